package api

import (
	"github.com/dmitrymomot/paybysquare/core/cache"
	"github.com/dmitrymomot/paybysquare/core/render"
	"github.com/dmitrymomot/paybysquare/core/server"
	"github.com/dmitrymomot/paybysquare/core/storage"
	"github.com/dmitrymomot/paybysquare/integration/database/redis"
	"github.com/dmitrymomot/paybysquare/integration/storage/s3"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

// Storage and cache drivers.
const (
	DriverNone   = "none"
	DriverLocal  = "local"
	DriverS3     = "s3"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

type Config struct {
	Server     server.Config
	Render     render.Config
	Compressor lzma.Config
	Cache      cache.Config
	Redis      redis.Config
	Local      storage.LocalConfig
	S3         s3.Config

	AppName       string `env:"APP_NAME" envDefault:"paybysquare"`
	Env           string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"none"`
	CacheDriver   string `env:"CACHE_DRIVER" envDefault:"none"`
	MaxBodyBytes  int64  `env:"HTTP_MAX_BODY_BYTES" envDefault:"65536"`
}

// DefaultConfig mirrors the envDefault values.
func DefaultConfig() Config {
	return Config{
		Server:        server.DefaultConfig(),
		Render:        render.DefaultConfig(),
		Compressor:    lzma.DefaultConfig(),
		Cache:         cache.DefaultConfig(),
		Redis:         redis.DefaultConfig(),
		Local:         storage.DefaultLocalConfig(),
		S3:            s3.DefaultConfig(),
		AppName:       "paybysquare",
		Env:           "development",
		LogLevel:      "info",
		StorageDriver: DriverNone,
		CacheDriver:   DriverNone,
		MaxBodyBytes:  64 << 10,
	}
}
