package paybysquare

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/paybysquare/core/cache"
	"github.com/dmitrymomot/paybysquare/core/render"
	"github.com/dmitrymomot/paybysquare/core/storage"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

// Option configures a Generator.
type Option func(*Generator) error

// WithCompressor sets the LZMA backend. The default is the xz subprocess.
func WithCompressor(c lzma.Compressor) Option {
	return func(g *Generator) error {
		g.compressor = c
		return nil
	}
}

// WithRasterizer replaces the QR rasterizer used by Render.
func WithRasterizer(r render.Rasterizer) Option {
	return func(g *Generator) error {
		g.rasterizer = r
		return nil
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) error {
		if l != nil {
			g.logger = l
		}
		return nil
	}
}

// WithClock sets the time source for implicit due dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) error {
		g.now = now
		return nil
	}
}

// WithCache memoizes encoded text and PNG bytes in c for ttl.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(g *Generator) error {
		g.cache = c
		g.cacheTTL = ttl
		return nil
	}
}

// WithStorage sets the blob store used by Store.
func WithStorage(s storage.Storage) Option {
	return func(g *Generator) error {
		g.storage = s
		return nil
	}
}

// WithDefaultSize sets the QR edge length used when a call passes size <= 0.
func WithDefaultSize(size int) Option {
	return func(g *Generator) error {
		if size < 1 {
			return fmt.Errorf("%w: %d", render.ErrInvalidSize, size)
		}
		g.defaultSize = size
		return nil
	}
}

// WithDefaultStyle sets the style ParseStyle returns for an empty name.
func WithDefaultStyle(style render.Style) Option {
	return func(g *Generator) error {
		if !style.Valid() {
			return fmt.Errorf("%w: %d", render.ErrUnknownStyle, uint8(style))
		}
		g.defaultStyle = style
		return nil
	}
}
