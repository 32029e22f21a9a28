// Package cache provides Redis-backed caching for paginated query results.
//
// The cache manager implements a read-through page cache with the following
// features:
//
// - Deterministic cache key generation from (resource, skip, limit)
// - Fixed TTL per entry (DefaultTTL, 5 minutes)
// - Coarse prefix invalidation (evict every page of a resource at once)
// - Prometheus metrics for observability
//
// # Basic Usage
//
//	// Create Redis client
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	// Create cache manager
//	manager := cache.NewManager(redisClient)
//
//	// Create cache key for a product page
//	key := cache.Key{Resource: "products", Skip: 0, Limit: 10}
//
//	// Get from cache
//	entry, err := manager.Get(ctx, key)
//	if err == cache.ErrCacheMiss {
//		// Cache miss - read from the store, then populate:
//		entry = cache.NewEntry(payload)
//		_ = manager.Set(ctx, key, entry)
//	}
//
//	// Evict every cached page of a resource after a write
//	_, _ = manager.DeleteByPrefix(ctx, cache.ResourcePrefix("products"))
//
// # Failure Semantics
//
// The manager reports every Redis or serialization failure to the caller.
// Callers that treat the cache as advisory (the catalog service does) log the
// error and fall back to the store; the manager itself never hides failures.
//
// # Metrics
//
// The cache manager exports Prometheus metrics:
//
//   - shop_cache_hits_total{layer="redis"} - Cache hits
//   - shop_cache_misses_total - Cache misses
//   - shop_cache_size_bytes{layer="redis"} - Cache size
//   - shop_cache_errors_total{operation} - Cache operation errors
//   - shop_cache_invalidations_total - Prefix invalidation runs
package cache
