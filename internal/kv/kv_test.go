package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/campuschat/campuschat/config"
)

func testBackendRoundtrip(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}

	if err := store.Set(ctx, "users", `[{"id":"u1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "users")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `[{"id":"u1"}]` {
		t.Fatalf("got %q", got)
	}

	if err := store.Set(ctx, "users", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Get(ctx, "users")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if got != `[]` {
		t.Fatalf("overwrite not applied, got %q", got)
	}

	if err := store.Remove(ctx, "users"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := store.Get(ctx, "users"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}

	// Removing an absent key is not an error.
	if err := store.Remove(ctx, "users"); err != nil {
		t.Fatalf("remove absent key: %v", err)
	}
}

func TestMemoryBackend(t *testing.T) {
	testBackendRoundtrip(t, NewStore(NewMemoryBackend()))
}

func TestRedisBackend(t *testing.T) {
	srv := miniredis.RunT(t)

	backend, err := NewRedisBackend(context.Background(), config.RedisConfig{Addr: srv.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	store := NewStore(backend)
	defer store.Close()

	testBackendRoundtrip(t, store)
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), config.StoreConfig{Driver: "carrier-pigeon"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
