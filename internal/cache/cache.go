package cache

import (
	"context"
	"errors"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// New builds a cache for the configured backend. Memory is the default.
func New[V any](backend string, redisOpts *RedisOptions) Cache[V] {
	if backend == RedisBackend {
		return NewRedisCache[V](redisOpts)
	}
	return NewMemoryCache[V]()
}
