package cache

import (
	"context"
	"errors"
)

var (
	// ErrCacheMiss indicates the requested key was not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates the cache entry is invalid or corrupted
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Cache stores upstream responses by key. Implementations must be safe for
// concurrent use.
type Cache interface {
	// Get returns ErrCacheMiss when the key is absent or expired.
	Get(ctx context.Context, key CacheKey) (*CacheEntry, error)
	Set(ctx context.Context, key CacheKey, entry *CacheEntry) error
}

// NopCache disables caching.
type NopCache struct{}

// Get always misses.
func (NopCache) Get(context.Context, CacheKey) (*CacheEntry, error) {
	return nil, ErrCacheMiss
}

// Set discards the entry.
func (NopCache) Set(context.Context, CacheKey, *CacheEntry) error {
	return nil
}
