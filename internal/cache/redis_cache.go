package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions holds client tuning and per-operation settings.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	OpTimeout time.Duration // per-call timeout; defaulted if zero
}

// RedisCache stores JSON-encoded values in redis.
type RedisCache[V any] struct {
	client    *redis.Client
	opTimeout time.Duration
}

// NewRedisCache constructs a redis-backed cache.
func NewRedisCache[V any](opts *RedisOptions) *RedisCache[V] {
	opTimeout := opts.OpTimeout
	if opTimeout == 0 {
		opTimeout = 100 * time.Millisecond
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisCache[V]{client: client, opTimeout: opTimeout}
}

// Close cleans up underlying connections.
func (r *RedisCache[V]) Close() error {
	return r.client.Close()
}

// Get returns the stored value or ErrCacheMiss.
func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, ErrCacheMiss
	} else if err != nil {
		return zero, err
	}

	var val V
	if err := json.Unmarshal(data, &val); err != nil {
		return zero, err
	}
	return val, nil
}

// Set stores value under key. Zero ttl means the entry never expires.
func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	return r.client.Set(ctx, key, data, ttl).Err()
}

// Delete removes the key.
func (r *RedisCache[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	return r.client.Del(ctx, key).Err()
}
