package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/paybysquare"
	"github.com/dmitrymomot/paybysquare/core/cache"
	"github.com/dmitrymomot/paybysquare/core/health"
	"github.com/dmitrymomot/paybysquare/core/i18n"
	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/core/server"
	"github.com/dmitrymomot/paybysquare/core/storage"
	"github.com/dmitrymomot/paybysquare/integration/database/redis"
	"github.com/dmitrymomot/paybysquare/integration/storage/s3"
	"github.com/dmitrymomot/paybysquare/middleware"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

// ErrUnknownDriver is returned for an unsupported STORAGE_DRIVER or CACHE_DRIVER.
var ErrUnknownDriver = errors.New("unknown driver")

// App is the PAY by square HTTP service.
type App struct {
	config    Config
	generator *paybysquare.Generator
	catalog   *i18n.I18n
	server    *server.Server
	logger    *slog.Logger
	checks    []health.Check
	closers   []func() error
}

type AppOption func(*App) error

// WithLogger replaces the logger built from APP_ENV and LOG_LEVEL.
func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l != nil {
			app.logger = l
		}
		return nil
	}
}

// WithGenerator uses g instead of building one from the configuration.
// The storage and cache drivers are then ignored.
func WithGenerator(g *paybysquare.Generator) AppOption {
	return func(app *App) error {
		app.generator = g
		return nil
	}
}

// WithServer replaces the server built from cfg.Server.
func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		app.server = s
		return nil
	}
}

// WithReadinessCheck adds a dependency check to /health/ready.
func WithReadinessCheck(check health.Check) AppOption {
	return func(app *App) error {
		app.checks = append(app.checks, check)
		return nil
	}
}

// NewApp wires the service from cfg. Call Close when done, or use Run.
func NewApp(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	app := &App{
		config: cfg,
		logger: logger.New(
			logger.ForEnv(cfg.Env, cfg.AppName),
			logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	catalog, err := payment.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}
	app.catalog = catalog

	if app.generator == nil {
		if err := app.buildGenerator(ctx); err != nil {
			_ = app.Close()
			return nil, err
		}
	}
	app.checks = append([]health.Check{app.generator.Check}, app.checks...)

	if app.server == nil {
		s, err := server.NewFromConfig(cfg.Server, server.WithLogger(app.logger))
		if err != nil {
			_ = app.Close()
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

func (app *App) buildGenerator(ctx context.Context) error {
	cfg := app.config

	compressor, err := lzma.NewFromConfig(cfg.Compressor, lzma.WithLogger(app.logger))
	if err != nil {
		return err
	}

	opts := []paybysquare.Option{
		paybysquare.WithCompressor(compressor),
		paybysquare.WithLogger(app.logger),
		paybysquare.WithDefaultSize(clampSize(cfg.Render.Size)),
		paybysquare.WithDefaultStyle(cfg.Render.Style),
	}

	switch strings.ToLower(cfg.CacheDriver) {
	case "", DriverNone:
	case DriverMemory:
		opts = append(opts, paybysquare.WithCache(cache.NewMemoryFromConfig(cfg.Cache), cfg.Cache.TTL))
	case DriverRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		app.closers = append(app.closers, client.Close)
		app.checks = append(app.checks, redis.Healthcheck(client))
		opts = append(opts, paybysquare.WithCache(redis.NewCache(client, cfg.Redis.KeyPrefix), cfg.Cache.TTL))
	default:
		return fmt.Errorf("%w: cache %q", ErrUnknownDriver, cfg.CacheDriver)
	}

	switch strings.ToLower(cfg.StorageDriver) {
	case "", DriverNone:
	case DriverLocal:
		local, err := storage.NewLocalFromConfig(cfg.Local)
		if err != nil {
			return err
		}
		opts = append(opts, paybysquare.WithStorage(local))
	case DriverS3:
		store, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return err
		}
		opts = append(opts, paybysquare.WithStorage(store))
	default:
		return fmt.Errorf("%w: storage %q", ErrUnknownDriver, cfg.StorageDriver)
	}

	gen, err := paybysquare.New(opts...)
	if err != nil {
		return err
	}
	app.generator = gen
	return nil
}

// Generator returns the generator serving requests.
func (app *App) Generator() *paybysquare.Generator {
	return app.generator
}

// Handler returns the routed and wrapped HTTP handler.
func (app *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /api/v1/qr", http.HandlerFunc(app.handleQR))
	mux.Handle("POST /api/v1/qr", http.HandlerFunc(app.handleQR))
	mux.Handle("GET /health/live", health.Liveness())
	mux.Handle("GET /health/ready", health.Readiness(app.logger, app.checks...))

	return middleware.Chain(mux,
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{UseExisting: true}),
		middleware.Logging(app.logger),
		middleware.BodyLimit(app.config.MaxBodyBytes),
	)
}

// Run serves until ctx is canceled, then shuts down and releases resources.
func (app *App) Run(ctx context.Context) error {
	defer func() {
		if err := app.Close(); err != nil {
			app.logger.Error("failed to release resources", logger.Error(err))
		}
	}()
	return app.server.Run(ctx, app.Handler())
}

// Close releases connections opened by NewApp.
func (app *App) Close() error {
	var errs []error
	for _, closeFn := range app.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	return errors.Join(errs...)
}
