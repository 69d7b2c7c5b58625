package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInspectReadsProfileClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signedToken(t, jwt.MapClaims{
		"sub":     "auth0|u1",
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"picture": "https://cdn.example.com/ada.png",
		"exp":     exp.Unix(),
	})

	info, err := Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "auth0|u1", info.Subject)
	assert.Equal(t, "Ada Lovelace", info.Name)
	assert.Equal(t, "ada@example.com", info.Email)
	assert.Equal(t, "https://cdn.example.com/ada.png", info.Picture)
	require.NotNil(t, info.ExpiresAt)
	assert.WithinDuration(t, exp, *info.ExpiresAt, time.Second)
	assert.False(t, info.Expired(time.Now()))
}

func TestInspectExpiredToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub": "auth0|u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	info, err := Inspect(token)
	require.NoError(t, err, "expiry is reported, not treated as a parse failure")
	assert.True(t, info.Expired(time.Now()))
}

func TestInspectTokenWithoutExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "auth0|u1"})

	info, err := Inspect(token)
	require.NoError(t, err)
	assert.Nil(t, info.ExpiresAt)
	assert.False(t, info.Expired(time.Now()))
}

func TestInspectRejectsBadInput(t *testing.T) {
	_, err := Inspect("")
	assert.ErrorIs(t, err, ErrNoToken)

	_, err = Inspect("not.a.jwt")
	assert.Error(t, err)
}
