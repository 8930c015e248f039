// Package cache provides the opportunistic response cache used by the
// PokeAPI client.
//
// The cache is an optimization, never a source of truth: entries are keyed by
// request URL, carry an optional TTL, and may be dropped at any time. Callers
// depend on the Cache interface so the policy can be swapped or disabled.
//
// # Implementations
//
//   - NopCache: caching disabled, every Get is a miss
//   - MemoryCache: bounded in-process LRU with optional TTL
//   - RedisCache: shared Redis-backed cache with optional TTL
//
// # Basic Usage
//
//	c, err := cache.NewMemoryCache(1024, 10*time.Minute)
//	if err != nil {
//		return err
//	}
//
//	key := cache.KeyFromURL(req.URL)
//	entry, err := c.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch upstream, then:
//		entry, _ = cache.ResponseToEntry(resp, 0)
//		_ = c.Set(ctx, key, entry)
//	}
//
// # Metrics
//
//   - pokeapi_cache_hits_total{layer} - Cache hits by layer (memory, redis)
//   - pokeapi_cache_misses_total{layer} - Cache misses by layer
//   - pokeapi_cache_errors_total{operation} - Cache backend errors
package cache
