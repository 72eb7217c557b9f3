package store

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("store: not found")
)

// KeyRefreshToken is the slot holding the session's refresh token.
const KeyRefreshToken = "refreshToken"

// Store is the console's durable key/value slot. Concrete drivers (sqlite,
// redis, memory) implement this. The session manager is its only reader and
// writer; nothing else may touch the credentials it holds.
type Store interface {
	// Get returns the value under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set creates or replaces the value under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is still reachable.
	Ping(ctx context.Context) error
}
