package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenExpiryReadsClaim(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix(), "sub": "u1"})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	require.Equal(t, exp.Unix(), got.Unix())
	require.False(t, TokenExpired(token))
}

func TestTokenExpiredForPastClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	require.True(t, TokenExpired(token))
}

func TestTokenWithoutExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "u1"})

	_, err := TokenExpiry(token)
	require.Error(t, err)

	// No readable expiry means the token is not treated as expired.
	require.False(t, TokenExpired(token))
}

func TestTokenExpiryRejectsGarbage(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	require.Error(t, err)
	require.False(t, TokenExpired("not-a-jwt"))
}
