package cache

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// KeyPrefix namespaces every cache key.
const KeyPrefix = "pokeapi"

// CacheKey identifies a cached upstream response by request URL.
type CacheKey struct {
	// Endpoint is the upstream path (e.g., "/api/v2/pokemon/25/")
	Endpoint string

	// QueryParams are the query parameters (e.g., {"limit": "20"})
	QueryParams url.Values
}

// KeyFromURL builds the cache key for a request URL. Scheme and host are
// ignored so that mirrors of the same API share entries.
func KeyFromURL(u *url.URL) CacheKey {
	if u == nil {
		return CacheKey{}
	}
	return CacheKey{
		Endpoint:    u.Path,
		QueryParams: u.Query(),
	}
}

// String generates a deterministic cache key string.
// Format: pokeapi:endpoint:query1=val1:query2=val2
//
// Example:
//
//	pokeapi:api/v2/pokemon:limit=20:offset=40
func (k CacheKey) String() string {
	parts := []string{KeyPrefix}

	endpoint := strings.Trim(k.Endpoint, "/")
	if endpoint != "" {
		parts = append(parts, endpoint)
	}

	if len(k.QueryParams) > 0 {
		queryKeys := make([]string, 0, len(k.QueryParams))
		for key := range k.QueryParams {
			queryKeys = append(queryKeys, key)
		}
		sort.Strings(queryKeys)

		for _, key := range queryKeys {
			parts = append(parts, fmt.Sprintf("%s=%s", key, k.QueryParams.Get(key)))
		}
	}

	return strings.Join(parts, ":")
}
