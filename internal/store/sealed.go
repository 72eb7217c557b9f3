package store

import (
	"context"
	"fmt"

	"github.com/NazifToure01/AlloColis-admin/pkg/cryptox"
)

// sealedStore encrypts every value before it reaches the inner store.
type sealedStore struct {
	Store
	sealer *cryptox.Sealer
}

// Sealed wraps inner so values are stored encrypted with sealer. Keys stay
// in the clear.
func Sealed(inner Store, sealer *cryptox.Sealer) Store {
	return &sealedStore{Store: inner, sealer: sealer}
}

func (s *sealedStore) Get(ctx context.Context, key string) (string, error) {
	enc, err := s.Store.Get(ctx, key)
	if err != nil {
		return "", err
	}

	plain, err := s.sealer.OpenString(enc)
	if err != nil {
		return "", fmt.Errorf("open %q: %w", key, err)
	}
	return plain, nil
}

func (s *sealedStore) Set(ctx context.Context, key, value string) error {
	enc, err := s.sealer.SealString(value)
	if err != nil {
		return fmt.Errorf("seal %q: %w", key, err)
	}
	return s.Store.Set(ctx, key, enc)
}
