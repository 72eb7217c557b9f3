// Package redis stores the console's slots in Redis so several console
// replicas share one operator session.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/redis/go-redis/v9"
)

// Config holds Redis connection configuration.
type Config struct {
	Addr         string
	Password     string
	DB           int
	KeyPrefix    string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns default Redis configuration.
func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:6379",
		KeyPrefix:    "allocolis:console:",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

type Store struct {
	client *redis.Client
	prefix string
}

// NewStore connects to Redis and verifies the connection with a ping.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return NewStoreFromClient(client, cfg.KeyPrefix), nil
}

// NewStoreFromClient wraps an existing client.
func NewStoreFromClient(client *redis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(k string) string { return s.prefix + k }

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", store.ErrNotFound
	}
	return v, err
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// ApplyMigrations is a no-op; Redis has no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
