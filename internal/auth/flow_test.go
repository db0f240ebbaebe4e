package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/admin-cli/internal/models"
)

// fakeAPI scripts the backend's OTP endpoints
type fakeAPI struct {
	sendErr   error
	sentTo    string
	verifyErr error
	verified  models.VerifyOTPRequest
	result    *models.VerifyOTPResult
}

func (f *fakeAPI) SendOTP(_ context.Context, mobile string) error {
	f.sentTo = mobile
	return f.sendErr
}

func (f *fakeAPI) VerifyOTP(_ context.Context, mobile, otp string) (*models.VerifyOTPResult, error) {
	f.verified = models.VerifyOTPRequest{MobileNumber: mobile, OTP: otp}
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.result, nil
}

// fakeStore records session writes
type fakeStore struct {
	token  string
	user   *models.User
	setErr error
}

func (s *fakeStore) Token() string       { return s.token }
func (s *fakeStore) User() *models.User  { return s.user }
func (s *fakeStore) Authenticated() bool { return s.token != "" && s.user != nil }
func (s *fakeStore) Clear() error        { s.token = ""; s.user = nil; return nil }
func (s *fakeStore) Set(token string, user models.User) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.token = token
	s.user = &user
	return nil
}

func okResult() *models.VerifyOTPResult {
	return &models.VerifyOTPResult{Token: "jwt-token", ID: "u1", Name: "Admin", Role: "admin"}
}

func TestSendOTPAdvancesToOTPSent(t *testing.T) {
	api := &fakeAPI{}
	flow := NewFlow(api, &fakeStore{})

	require.Equal(t, EnteringMobile, flow.State())
	require.NoError(t, flow.SendOTP(context.Background(), "9999999999"))
	require.Equal(t, OTPSent, flow.State())
	require.Equal(t, "9999999999", flow.Mobile())
	require.Equal(t, "9999999999", api.sentTo)
}

func TestSendOTPRejectsInvalidNumber(t *testing.T) {
	api := &fakeAPI{}
	flow := NewFlow(api, &fakeStore{})

	require.Error(t, flow.SendOTP(context.Background(), "12345"))
	require.Equal(t, EnteringMobile, flow.State())
	require.Empty(t, api.sentTo)
}

func TestSendOTPFailureStaysAtEnteringMobile(t *testing.T) {
	api := &fakeAPI{sendErr: fmt.Errorf("number not registered")}
	flow := NewFlow(api, &fakeStore{})

	err := flow.SendOTP(context.Background(), "9999999999")
	require.EqualError(t, err, "number not registered")
	require.Equal(t, EnteringMobile, flow.State())
}

func TestVerifyEstablishesSessionAtomically(t *testing.T) {
	api := &fakeAPI{result: okResult()}
	store := &fakeStore{}
	flow := NewFlow(api, store)

	require.NoError(t, flow.SendOTP(context.Background(), "9999999999"))
	require.NoError(t, flow.Verify(context.Background(), "123456"))

	require.Equal(t, Authenticated, flow.State())
	require.True(t, store.Authenticated())
	require.Equal(t, "jwt-token", store.Token())
	require.Equal(t, "Admin", store.User().Name)
	require.Equal(t, "123456", api.verified.OTP)
}

func TestVerifyFailureLeavesPriorSessionUntouched(t *testing.T) {
	api := &fakeAPI{verifyErr: fmt.Errorf("Invalid OTP")}
	store := &fakeStore{token: "old-token", user: &models.User{ID: "old", Name: "Old Admin"}}
	flow := NewFlow(api, store)

	require.NoError(t, flow.SendOTP(context.Background(), "9999999999"))
	err := flow.Verify(context.Background(), "000000")
	require.EqualError(t, err, "Invalid OTP")

	// Flow returns to the OTP-entry state; the stored session is as before.
	require.Equal(t, OTPSent, flow.State())
	require.Equal(t, "old-token", store.Token())
	require.Equal(t, "Old Admin", store.User().Name)
}

func TestVerifyStoreFailureDoesNotAuthenticate(t *testing.T) {
	api := &fakeAPI{result: okResult()}
	store := &fakeStore{setErr: fmt.Errorf("disk full")}
	flow := NewFlow(api, store)

	require.NoError(t, flow.SendOTP(context.Background(), "9999999999"))
	require.Error(t, flow.Verify(context.Background(), "123456"))
	require.Equal(t, OTPSent, flow.State())
	require.False(t, store.Authenticated())
}

func TestVerifyWithoutSendFails(t *testing.T) {
	flow := NewFlow(&fakeAPI{result: okResult()}, &fakeStore{})

	require.Error(t, flow.Verify(context.Background(), "123456"))
	require.Equal(t, EnteringMobile, flow.State())
}

func TestVerifyRejectsMalformedOTP(t *testing.T) {
	api := &fakeAPI{result: okResult()}
	flow := NewFlow(api, &fakeStore{})

	require.NoError(t, flow.SendOTP(context.Background(), "9999999999"))
	require.Error(t, flow.Verify(context.Background(), "abc"))
	require.Equal(t, OTPSent, flow.State())
	require.Empty(t, api.verified.OTP)
}

func TestChangeNumberResetsUnconditionally(t *testing.T) {
	api := &fakeAPI{}
	flow := NewFlow(api, &fakeStore{})

	require.NoError(t, flow.SendOTP(context.Background(), "9999999999"))
	flow.ChangeNumber()
	require.Equal(t, EnteringMobile, flow.State())
	require.Empty(t, flow.Mobile())
}
