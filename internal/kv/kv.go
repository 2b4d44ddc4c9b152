package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuschat/campuschat/config"
)

// ErrNotFound is returned when a key does not exist in the store.
var ErrNotFound = errors.New("key not found")

// Backend defines the string-keyed operations common to all key-value
// backends. Values are opaque serialized blobs.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// Store wraps a key-value backend with a stable API.
type Store struct {
	backend Backend
}

// NewStore constructs a Store wrapper for the provided backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Open constructs a Store for the backend named in cfg.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	switch cfg.Driver {
	case "sugardb":
		backend, err := NewSugarDBBackend(ctx, cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return NewStore(backend), nil
	case "redis":
		backend, err := NewRedisBackend(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewStore(backend), nil
	case "memory":
		return NewStore(NewMemoryBackend()), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// Get returns the value stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return s.backend.Get(ctx, key)
}

// Set stores value under key, overwriting any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.backend.Set(ctx, key, value)
}

// Remove deletes the value stored under key. Removing an absent key is
// not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.backend.Remove(ctx, key)
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
