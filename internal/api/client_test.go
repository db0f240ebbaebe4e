package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/admin-cli/internal/models"
	"github.com/quickbites/admin-cli/internal/utils"
)

// memStore is an in-memory session store for tests
type memStore struct {
	token string
	user  *models.User
}

func (s *memStore) Token() string       { return s.token }
func (s *memStore) User() *models.User  { return s.user }
func (s *memStore) Authenticated() bool { return s.token != "" && s.user != nil }
func (s *memStore) Clear() error        { s.token = ""; s.user = nil; return nil }
func (s *memStore) Set(token string, user models.User) error {
	s.token = token
	s.user = &user
	return nil
}

func loggedIn() *memStore {
	return &memStore{token: "tok-123", user: &models.User{ID: "u1", Name: "Admin"}}
}

func TestGetListDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/customers", r.URL.Path)
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "10", r.URL.Query().Get("limit"))
		require.Equal(t, "Active", r.URL.Query().Get("status"))
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"_id":"c1","name":"Alice"},{"_id":"c2","name":"Bob"}],"page":2,"pages":5,"total":42}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	page, err := GetList[models.Customer](context.Background(), client, "customers", models.ListParams{
		Page:   2,
		Limit:  10,
		Filter: map[string]string{"status": "Active"},
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, "Alice", page.Items[0].Name)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 5, page.Pages)
	require.Equal(t, 42, page.Total)
}

func TestGetListDecodesBareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"_id":"c1","name":"Alice"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	page, err := GetList[models.Customer](context.Background(), client, "customers", models.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 1, page.Pages)
	require.Equal(t, 1, page.Total)
}

func TestGetListMalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	_, err := GetList[models.Customer](context.Background(), client, "customers", models.ListParams{})
	require.Error(t, err)

	var decodeErr *utils.DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestNoBearerHeaderWhenLoggedOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &memStore{})
	_, err := GetList[models.Customer](context.Background(), client, "customers", models.ListParams{})
	require.NoError(t, err)
}

func TestErrorMessageExtractedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid OTP"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &memStore{})
	_, err := client.VerifyOTP(context.Background(), "9999999999", "000000")
	require.Error(t, err)
	require.Equal(t, "Invalid OTP", err.Error())

	var apiErr *utils.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestUnauthorizedClassified(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	_, err := GetOne[models.Customer](context.Background(), client, "customers", "c1")
	require.Error(t, err)
	require.True(t, utils.IsAuthError(err))
	require.Equal(t, "token expired", err.Error())
}

func TestVerifyOTPReturnsTokenAndProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/verify-otp", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"data":{"token":"jwt-token","_id":"u1","name":"Admin","role":"admin"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &memStore{})
	result, err := client.VerifyOTP(context.Background(), "9999999999", "123456")
	require.NoError(t, err)
	require.Equal(t, "jwt-token", result.Token)
	require.Equal(t, "Admin", result.User().Name)
	require.Equal(t, "admin", result.User().Role)
}

func TestVerifyOTPMissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"_id":"u1","name":"Admin"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &memStore{})
	_, err := client.VerifyOTP(context.Background(), "9999999999", "123456")
	require.Error(t, err)
}

func TestSendOTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/users/send-otp", r.URL.Path)
		w.Write([]byte(`{"message":"OTP sent"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &memStore{})
	require.NoError(t, client.SendOTP(context.Background(), "9999999999"))
}

func TestDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/restaurants/r1", r.URL.Path)
		w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	require.NoError(t, client.Delete(context.Background(), "restaurants", "r1"))
}

func TestCreateDecodesWrappedRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"data":{"_id":"r1","name":"Spice Villa","area":"Downtown","status":"Active"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, loggedIn())
	restaurant, err := Create[models.Restaurant](context.Background(), client, "restaurants", map[string]string{
		"name": "Spice Villa",
		"area": "Downtown",
	})
	require.NoError(t, err)
	require.Equal(t, "r1", restaurant.ID)
	require.Equal(t, "Spice Villa", restaurant.Name)
}
