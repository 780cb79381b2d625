package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints signed compact tokens from a claim set.
type Signer interface {
	Sign(claims Claims) (string, error)
}

// Verifier parses a compact token and validates its signature and expiry.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// HS256 signs and verifies tokens with a single shared secret. It is both
// a Signer and a Verifier.
type HS256 struct {
	secret []byte
}

var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

// NewHS256 builds a symmetric signer/verifier from the shared secret.
func NewHS256(secret []byte) (*HS256, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	return &HS256{secret: secret}, nil
}

// Sign produces a compact HS256-signed token.
func (h *HS256) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// Verify parses raw, enforcing the HS256 method, the signature and the
// registered time claims. All failures collapse into ErrExpired or
// ErrVerification so handlers cannot leak the reason.
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return h.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenNotValidYet) {
			return Claims{}, ErrExpired
		}
		return Claims{}, ErrVerification
	}

	return claims, nil
}
