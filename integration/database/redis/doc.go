// Package redis connects to Redis and provides a redis-backed cache.Cache for
// encoded payloads and rendered images.
//
// # Connecting
//
// Connect parses the URL, pings with retries and returns a ready client:
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  time.Second,
//		ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Both redis:// and rediss:// (TLS) URLs are accepted.
//
// # Caching
//
//	c := redis.NewCache(client, "paybysquare:")
//	err = c.Set(ctx, "qr:abc", pngBytes, time.Hour)
//	data, err := c.Get(ctx, "qr:abc") // cache.ErrCacheMiss when absent
//
// # Health Checking
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// not ready
//	}
//
// # Error Handling
//
//   - ErrEmptyConnectionURL: no URL configured
//   - ErrFailedToParseRedisConnString: malformed URL
//   - ErrRedisNotReady: no successful ping before retries or the timeout ran out
//   - ErrHealthcheckFailed: a health check ping failed
package redis
