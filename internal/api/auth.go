package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quickbites/admin-cli/internal/models"
)

// SendOTP requests a one-time password for the given mobile number
func (c *Client) SendOTP(ctx context.Context, mobile string) error {
	payload := models.SendOTPRequest{MobileNumber: mobile}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	_, err = c.do(ctx, http.MethodPost, "/api/users/send-otp", nil, bytes.NewReader(data), "application/json")
	return err
}

// VerifyOTP exchanges a mobile number and OTP for a bearer token plus
// the operator profile. It does not touch the session store; the caller
// decides when the pair becomes the active session.
func (c *Client) VerifyOTP(ctx context.Context, mobile, otp string) (*models.VerifyOTPResult, error) {
	payload := models.VerifyOTPRequest{MobileNumber: mobile, OTP: otp}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	const path = "/api/users/verify-otp"
	body, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(data), "application/json")
	if err != nil {
		return nil, err
	}

	result, err := decodeOne[models.VerifyOTPResult](path, body)
	if err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, fmt.Errorf("verification response contained no token")
	}

	return result, nil
}
