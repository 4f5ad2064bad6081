// Package cache provides a byte cache abstraction for rendered payloads and
// images, backed by an in-process LRU.
//
// LRUCache is a generic, thread-safe least-recently-used map with an optional
// eviction callback:
//
//	c := cache.NewLRUCache[string, []byte](100)
//	c.Put("k", []byte("v"))
//	v, ok := c.Get("k")
//
// Memory adapts LRUCache to the Cache interface and adds per-entry TTLs:
//
//	var c cache.Cache = cache.NewMemory(1024)
//	_ = c.Set(ctx, "qr:abc", pngBytes, time.Hour)
//	data, err := c.Get(ctx, "qr:abc")
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// render and store
//	}
//
// A redis-backed Cache lives in integration/database/redis.
package cache
