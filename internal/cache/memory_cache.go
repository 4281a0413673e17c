package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time // zero time = no expiration
}

// MemoryCache is an in-process cache with lazy expiry plus a background
// janitor that sweeps expired entries.
type MemoryCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	quit    chan struct{}
	once    sync.Once
}

// NewMemoryCache creates a memory cache with a 30s janitor interval.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithInterval[V](30 * time.Second)
}

// NewMemoryCacheWithInterval allows customizing the janitor interval.
func NewMemoryCacheWithInterval[V any](janitorInterval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		entries: make(map[string]entry[V]),
		quit:    make(chan struct{}),
	}
	go mc.janitor(janitorInterval)
	return mc
}

// Stop terminates the janitor goroutine.
func (mc *MemoryCache[V]) Stop() {
	mc.once.Do(func() { close(mc.quit) })
}

func (mc *MemoryCache[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-mc.quit:
			return
		case now := <-ticker.C:
			mc.mu.Lock()
			for k, e := range mc.entries {
				if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
					delete(mc.entries, k)
				}
			}
			mc.mu.Unlock()
		}
	}
}

// Get returns the stored value or ErrCacheMiss.
func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V

	mc.mu.RLock()
	e, ok := mc.entries[key]
	mc.mu.RUnlock()

	if !ok {
		return zero, ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		mc.mu.Lock()
		delete(mc.entries, key)
		mc.mu.Unlock()
		return zero, ErrCacheMiss
	}
	return e.value, nil
}

// Set stores value under key. Zero ttl means the entry never expires.
func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	e := entry[V]{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	mc.mu.Lock()
	mc.entries[key] = e
	mc.mu.Unlock()
	return nil
}

// Delete removes the key.
func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	mc.mu.Lock()
	delete(mc.entries, key)
	mc.mu.Unlock()
	return nil
}
