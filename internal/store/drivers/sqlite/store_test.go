package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/NazifToure01/AlloColis-admin/internal/store/drivers/sqlite"
	"github.com/NazifToure01/AlloColis-admin/internal/store/storetest"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, openStore(t, filepath.Join(t.TempDir(), "console.db")))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "console.db"))

	// Second run must hit ErrNoChange and be swallowed
	require.NoError(t, s.ApplyMigrations())
}

func TestValueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "console.db")

	first, err := sqlite.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.ApplyMigrations())
	require.NoError(t, first.Set(ctx, store.KeyRefreshToken, "rt-persisted"))
	require.NoError(t, first.Close())

	// This is the whole point of the slot: the refresh token outlives the process
	second := openStore(t, path)
	got, err := second.Get(ctx, store.KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, "rt-persisted", got)
}
