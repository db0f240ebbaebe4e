// Package auth implements the two-step OTP login flow: the operator
// submits a mobile number, the backend sends a one-time password, and a
// successful verification establishes the session.
package auth

import (
	"context"
	"fmt"

	"github.com/quickbites/admin-cli/internal/models"
	"github.com/quickbites/admin-cli/internal/session"
	"github.com/quickbites/admin-cli/internal/utils"
)

// State is the login flow state
type State int

const (
	// EnteringMobile is the initial state, awaiting a mobile number
	EnteringMobile State = iota
	// OTPSent means the backend accepted the number and sent a code
	OTPSent
	// Verifying means a verification request is in flight
	Verifying
	// Authenticated is the terminal success state
	Authenticated
)

// API is the slice of the backend client the flow needs
type API interface {
	SendOTP(ctx context.Context, mobile string) error
	VerifyOTP(ctx context.Context, mobile, otp string) (*models.VerifyOTPResult, error)
}

// Flow drives the OTP login sequence against a session store
type Flow struct {
	api   API
	store session.Store

	state  State
	mobile string
}

// NewFlow creates a login flow
func NewFlow(api API, store session.Store) *Flow {
	return &Flow{
		api:   api,
		store: store,
		state: EnteringMobile,
	}
}

// State returns the current flow state
func (f *Flow) State() State {
	return f.state
}

// Mobile returns the number the OTP was sent to
func (f *Flow) Mobile() string {
	return f.mobile
}

// SendOTP validates the mobile number and asks the backend to send a
// code. On success the flow advances to OTPSent; on failure it stays at
// EnteringMobile with the server's message as the error.
func (f *Flow) SendOTP(ctx context.Context, mobile string) error {
	if err := utils.ValidateMobileNumber(mobile); err != nil {
		return err
	}

	if err := f.api.SendOTP(ctx, mobile); err != nil {
		return err
	}

	f.mobile = mobile
	f.state = OTPSent
	return nil
}

// Verify submits the code for the number the OTP was sent to. On
// success the token and profile are stored together before the flow
// reports Authenticated; any failure returns the flow to OTPSent and
// leaves whatever session existed before untouched.
func (f *Flow) Verify(ctx context.Context, otp string) error {
	if f.state != OTPSent {
		return fmt.Errorf("no OTP has been sent")
	}

	if err := utils.ValidateOTP(otp); err != nil {
		return err
	}

	f.state = Verifying
	result, err := f.api.VerifyOTP(ctx, f.mobile, otp)
	if err != nil {
		f.state = OTPSent
		return err
	}

	if err := f.store.Set(result.Token, result.User()); err != nil {
		f.state = OTPSent
		return err
	}

	f.state = Authenticated
	return nil
}

// ChangeNumber resets the flow to the initial state unconditionally
func (f *Flow) ChangeNumber() {
	f.mobile = ""
	f.state = EnteringMobile
}
