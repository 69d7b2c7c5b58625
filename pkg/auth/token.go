// Package auth inspects bearer tokens issued by the identity provider.
//
// The client never verifies signatures: the token is opaque credential
// material forwarded to the backend, which owns verification. Claims are
// read only to bootstrap the user profile and to refuse tokens that have
// already expired.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoToken = errors.New("no access token")

type profileClaims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

// TokenInfo is the subset of token claims the client cares about.
type TokenInfo struct {
	Subject   string
	Name      string
	Email     string
	Picture   string
	ExpiresAt *time.Time
}

// Expired reports whether the token expiry has passed. Tokens without an
// exp claim are treated as non-expiring.
func (t *TokenInfo) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && now.After(*t.ExpiresAt)
}

// Inspect parses token claims without verifying the signature.
func Inspect(token string) (*TokenInfo, error) {
	if token == "" {
		return nil, ErrNoToken
	}

	claims := &profileClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	info := &TokenInfo{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Picture: claims.Picture,
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		info.ExpiresAt = &exp
	}
	return info, nil
}
