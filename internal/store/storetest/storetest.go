// Package storetest holds the behaviour every store driver must share.
package storetest

import (
	"context"
	"testing"

	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/stretchr/testify/require"
)

// Run exercises s against the store contract. s must start empty.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "storetest-missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, store.KeyRefreshToken, "rt-1"))

		got, err := s.Get(ctx, store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-1", got)
	})

	t.Run("set replaces", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, store.KeyRefreshToken, "rt-2"))

		got, err := s.Get(ctx, store.KeyRefreshToken)
		require.NoError(t, err)
		require.Equal(t, "rt-2", got)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, store.KeyRefreshToken))

		_, err := s.Get(ctx, store.KeyRefreshToken)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete missing is fine", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, store.KeyRefreshToken))
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, s.Ping(ctx))
	})
}
