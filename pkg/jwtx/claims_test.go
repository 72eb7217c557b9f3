package jwtx_test

import (
	"testing"
	"time"

	"github.com/NazifToure01/AlloColis-admin/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()

	// Any key will do, the console never verifies signatures
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return raw
}

func TestInspect(t *testing.T) {
	raw := sign(t, jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"},
		UserID:           "u1",
		Role:             "admin",
	})

	c, err := jwtx.Inspect(raw)
	require.NoError(t, err)
	require.Equal(t, "u1", c.UserID)
	require.Equal(t, "admin", c.Role)

	t.Run("malformed", func(t *testing.T) {
		_, err := jwtx.Inspect("opaque-token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestExpiresAt(t *testing.T) {
	exp := time.Unix(1_800_000_000, 0)

	got, err := jwtx.ExpiresAt(sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}))
	require.NoError(t, err)
	require.True(t, exp.Equal(got))

	_, err = jwtx.ExpiresAt(sign(t, jwt.RegisteredClaims{Subject: "u1"}))
	require.ErrorIs(t, err, jwtx.ErrNoExpiry)
}

func TestNeedsRenewal(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)
	tokenExpiringIn := func(d time.Duration) string {
		return sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(d))})
	}

	t.Run("fresh token", func(t *testing.T) {
		require.False(t, jwtx.NeedsRenewal(tokenExpiringIn(10*time.Minute), jwtx.DefaultRenewBuffer, now))
	})

	t.Run("inside buffer", func(t *testing.T) {
		require.True(t, jwtx.NeedsRenewal(tokenExpiringIn(10*time.Second), jwtx.DefaultRenewBuffer, now))
	})

	t.Run("already expired", func(t *testing.T) {
		// ParseUnverified does not validate exp, so expired tokens still decode
		require.True(t, jwtx.NeedsRenewal(tokenExpiringIn(-time.Hour), jwtx.DefaultRenewBuffer, now))
	})

	t.Run("opaque token", func(t *testing.T) {
		require.False(t, jwtx.NeedsRenewal("not-a-jwt", jwtx.DefaultRenewBuffer, now))
	})
}
