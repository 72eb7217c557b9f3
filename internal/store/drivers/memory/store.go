// Package memory is a process-local store driver. Nothing survives a restart,
// which makes it the driver for tests and throwaway CLI runs.
package memory

import (
	"context"
	"sync"

	"github.com/NazifToure01/AlloColis-admin/internal/store"
)

type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

func (s *Store) ApplyMigrations() error       { return nil }
func (s *Store) Close() error                 { return nil }
func (s *Store) Ping(_ context.Context) error { return nil }
