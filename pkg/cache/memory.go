package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const layerMemory = "memory"

// MemoryCache is a bounded in-process LRU cache.
type MemoryCache struct {
	lru *expirable.LRU[string, *CacheEntry]
}

// NewMemoryCache creates a cache holding at most size entries. A positive
// ttl evicts entries that age past it; ttl <= 0 keeps entries until they are
// pushed out by newer ones.
func NewMemoryCache(size int, ttl time.Duration) (*MemoryCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("cache size must be > 0 (got %d)", size)
	}
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, *CacheEntry](size, nil, ttl),
	}, nil
}

// Get retrieves a cache entry by key.
func (m *MemoryCache) Get(_ context.Context, key CacheKey) (*CacheEntry, error) {
	cacheKey := key.String()

	entry, ok := m.lru.Get(cacheKey)
	if !ok {
		CacheMisses.WithLabelValues(layerMemory).Inc()
		return nil, ErrCacheMiss
	}
	if entry.IsExpired() {
		m.lru.Remove(cacheKey)
		CacheMisses.WithLabelValues(layerMemory).Inc()
		return nil, ErrCacheMiss
	}

	CacheHits.WithLabelValues(layerMemory).Inc()
	return entry, nil
}

// Set stores a cache entry. Already expired entries are ignored.
func (m *MemoryCache) Set(_ context.Context, key CacheKey, entry *CacheEntry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}
	if entry.IsExpired() {
		return nil
	}
	m.lru.Add(key.String(), entry)
	return nil
}

// Len returns the number of cached entries.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
