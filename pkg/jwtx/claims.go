package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an issued access token. Tokens are
// stateless and cannot be revoked before expiry, so this is the full
// session length.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the claim set carried by access tokens: the registered claims
// plus the user's email. Keep changes additive to preserve compatibility
// with already-issued tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`
}

// NewClaims builds a claim set for the given subject, valid from now for ttl.
func NewClaims(subject, email string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
}
