package cache

import (
	"context"
	"time"
)

// Cache stores opaque values with an expiry. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns ErrCacheMiss when key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Config selects the in-process cache capacity and the default entry lifetime.
type Config struct {
	Capacity int           `env:"CACHE_CAPACITY" envDefault:"1024"`
	TTL      time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

// DefaultConfig returns 1024 entries with a one hour TTL.
func DefaultConfig() Config {
	return Config{
		Capacity: 1024,
		TTL:      time.Hour,
	}
}
