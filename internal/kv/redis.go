package kv

import (
	"context"
	"errors"

	"github.com/campuschat/campuschat/config"
	"github.com/redis/go-redis/v9"
)

// RedisBackend stores values in a Redis server. Intended for setups where
// several client instances share one storage location.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend connects to the Redis server described by cfg and
// verifies the connection with a ping.
func NewRedisBackend(ctx context.Context, cfg config.RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisBackend{client: client}, nil
}

func (b *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	value, err := b.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (b *RedisBackend) Set(ctx context.Context, key, value string) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

func (b *RedisBackend) Remove(ctx context.Context, key string) error {
	return b.client.Del(ctx, key).Err()
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
