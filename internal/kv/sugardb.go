package kv

import (
	"context"
	"fmt"
	"os"

	sdk "github.com/echovault/sugardb/sugardb"
)

// SugarDBBackend stores values in an embedded SugarDB instance with
// on-disk persistence. This is the default backend: a single local data
// directory, no external process.
type SugarDBBackend struct {
	db *sdk.SugarDB
}

// NewSugarDBBackend opens an embedded SugarDB instance persisting under
// dataDir.
func NewSugarDBBackend(ctx context.Context, dataDir string) (*SugarDBBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	conf := sdk.DefaultConfig()
	conf.DataDir = dataDir

	db, err := sdk.NewSugarDB(
		sdk.WithConfig(conf),
		sdk.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("sugardb init failed: %w", err)
	}
	return &SugarDBBackend{db: db}, nil
}

func (b *SugarDBBackend) Get(_ context.Context, key string) (string, error) {
	vals, err := b.db.MGet(key)
	if err != nil {
		return "", err
	}
	if len(vals) == 0 {
		return "", ErrNotFound
	}
	// SugarDB reports missing keys as empty or nil-ish strings.
	if vals[0] == "" || vals[0] == "nil" || vals[0] == "(nil)" || vals[0] == "<nil>" {
		return "", ErrNotFound
	}
	return vals[0], nil
}

func (b *SugarDBBackend) Set(_ context.Context, key, value string) error {
	_, _, err := b.db.Set(key, value, sdk.SETOptions{})
	return err
}

func (b *SugarDBBackend) Remove(_ context.Context, key string) error {
	_, err := b.db.Del(key)
	return err
}

func (b *SugarDBBackend) Close() error {
	b.db.ShutDown()
	return nil
}
