package kv

import (
	"context"
	"sync"
)

// MemoryBackend is a non-persistent map-backed store used in tests.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryBackend constructs an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (b *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, ok := b.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (b *MemoryBackend) Set(_ context.Context, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = value
	return nil
}

func (b *MemoryBackend) Remove(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.values, key)
	return nil
}

func (b *MemoryBackend) Close() error {
	return nil
}
