package models

// User represents the authenticated operator's profile as returned by
// the verify-otp endpoint and cached locally alongside the session token.
type User struct {
	ID     string `json:"_id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Mobile string `json:"mobileNumber" yaml:"mobile"`
	Role   string `json:"role" yaml:"role"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Customer represents a platform customer account
type Customer struct {
	ID        string `json:"_id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Mobile    string `json:"mobileNumber" yaml:"mobile"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Status    string `json:"status" yaml:"status"`
	Orders    int    `json:"totalOrders" yaml:"total_orders"`
	CreatedAt string `json:"createdAt" yaml:"created_at"`
}

// DeliveryAgent represents a delivery-staff member
type DeliveryAgent struct {
	ID         string `json:"_id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Mobile     string `json:"mobileNumber" yaml:"mobile"`
	Zone       string `json:"zone,omitempty" yaml:"zone,omitempty"`
	Status     string `json:"status" yaml:"status"`
	Deliveries int    `json:"totalDeliveries" yaml:"total_deliveries"`
}

// SendOTPRequest represents the send-otp request body
type SendOTPRequest struct {
	MobileNumber string `json:"mobileNumber"`
}

// VerifyOTPRequest represents the verify-otp request body
type VerifyOTPRequest struct {
	MobileNumber string `json:"mobileNumber"`
	OTP          string `json:"otp"`
}

// VerifyOTPResult represents the payload inside the verify-otp response
// envelope: the bearer token plus the operator profile fields.
type VerifyOTPResult struct {
	Token  string `json:"token"`
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Mobile string `json:"mobileNumber"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// User converts the verify-otp payload into the cached profile shape.
func (r VerifyOTPResult) User() User {
	return User{
		ID:     r.ID,
		Name:   r.Name,
		Mobile: r.Mobile,
		Role:   r.Role,
		Avatar: r.Avatar,
	}
}
