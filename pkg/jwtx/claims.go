// Package jwtx inspects access tokens issued by the AlloColis backend.
//
// The console never holds the backend's signing key, so it cannot verify
// tokens. It only reads the expiry so the session can renew ahead of time;
// the backend stays the authority on validity.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultRenewBuffer is how long before expiry a token counts as stale.
const DefaultRenewBuffer = 30 * time.Second

var (
	ErrMalformed = errors.New("jwtx: malformed token")
	ErrNoExpiry  = errors.New("jwtx: token has no exp claim")
)

// Claims are the fields the console reads from a backend access token.
type Claims struct {
	jwt.RegisteredClaims

	// Backend-specific identity fields. Either may be absent.
	UserID string `json:"id,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Inspect decodes the token's claims without verifying its signature.
func Inspect(raw string) (*Claims, error) {
	var c Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &c); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	return &c, nil
}

// ExpiresAt returns the token's exp claim.
func ExpiresAt(raw string) (time.Time, error) {
	c, err := Inspect(raw)
	if err != nil {
		return time.Time{}, err
	}
	if c.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return c.ExpiresAt.Time, nil
}

// NeedsRenewal reports whether raw expires within buffer of now. Opaque
// tokens and tokens without exp are never considered stale here; the backend
// answers 401 for those instead.
func NeedsRenewal(raw string, buffer time.Duration, now time.Time) bool {
	exp, err := ExpiresAt(raw)
	if err != nil {
		return false
	}
	return !now.Add(buffer).Before(exp)
}
