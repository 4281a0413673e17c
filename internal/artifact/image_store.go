// Package artifact stores the rendered summary image: authoritative copy on
// disk, latest bytes kept in a cache in front of it.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/osahenru/atlas/internal/cache"
	"github.com/osahenru/atlas/models"
)

const cacheKey = "summary_image"

// ImageStore persists a single disposable PNG artifact.
type ImageStore struct {
	path  string
	cache cache.Cache[[]byte]
	ttl   time.Duration
}

// NewImageStore returns a store writing to path. The cache may be any backend;
// a zero ttl keeps cached bytes until the next Put overwrites them.
func NewImageStore(path string, c cache.Cache[[]byte], ttl time.Duration) *ImageStore {
	return &ImageStore{path: path, cache: c, ttl: ttl}
}

// Put replaces the artifact. The file is written to a temp path and renamed so
// a concurrent reader never observes a half-written image.
func (s *ImageStore) Put(ctx context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write artifact: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close artifact: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace artifact %s: %w", s.path, err)
	}

	// Cache priming is best effort; disk already holds the new artifact.
	_ = s.cache.Set(ctx, cacheKey, data, s.ttl)
	return nil
}

// Get returns the current artifact bytes, preferring the cache. A missing
// artifact is a normal condition reported as models.ErrImageNotFound.
func (s *ImageStore) Get(ctx context.Context) ([]byte, error) {
	if data, err := s.cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
		return data, nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, models.ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", s.path, err)
	}

	_ = s.cache.Set(ctx, cacheKey, data, s.ttl)
	return data, nil
}
