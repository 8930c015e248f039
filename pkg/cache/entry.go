package cache

import (
	"net/http"
	"time"
)

// CacheEntry represents a cached upstream response.
type CacheEntry struct {
	// Data is the response body
	Data []byte `json:"data"`

	// StatusCode is the HTTP status code of the cached response
	StatusCode int `json:"status_code"`

	// Headers are the response headers
	Headers http.Header `json:"headers"`

	// CachedAt is when we cached this response
	CachedAt time.Time `json:"cached_at"`

	// Expires is when the entry becomes stale. Zero means no expiry.
	Expires time.Time `json:"expires,omitempty"`
}

// IsExpired returns true if the cache entry has an expiry that has passed.
func (e *CacheEntry) IsExpired() bool {
	if e.Expires.IsZero() {
		return false
	}
	return time.Now().After(e.Expires)
}

// TTL returns the time until expiration.
// Returns 0 if already expired or if the entry never expires; use
// HasExpiry to tell the two apart.
func (e *CacheEntry) TTL() time.Duration {
	if e.Expires.IsZero() {
		return 0
	}
	ttl := time.Until(e.Expires)
	if ttl < 0 {
		return 0
	}
	return ttl
}

// HasExpiry reports whether the entry carries a TTL.
func (e *CacheEntry) HasExpiry() bool {
	return !e.Expires.IsZero()
}
