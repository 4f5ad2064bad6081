package lzma

import (
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by Config.
const (
	BackendXZ     = "xz"
	BackendNative = "native"
)

// Config selects and tunes the compressor from the environment.
type Config struct {
	Backend string        `env:"PAYBYSQUARE_COMPRESSOR" envDefault:"xz"`
	XZPath  string        `env:"PAYBYSQUARE_XZ_PATH"`
	Timeout time.Duration `env:"PAYBYSQUARE_COMPRESS_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns the xz backend with the default timeout.
func DefaultConfig() Config {
	return Config{
		Backend: BackendXZ,
		Timeout: DefaultTimeout,
	}
}

// NewFromConfig builds the configured compressor. Extra options apply to the
// xz backend only and override config values.
func NewFromConfig(cfg Config, opts ...XZOption) (Compressor, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", BackendXZ:
		xzOpts := make([]XZOption, 0, len(opts)+2)
		if cfg.XZPath != "" {
			xzOpts = append(xzOpts, WithPath(cfg.XZPath))
		}
		if cfg.Timeout > 0 {
			xzOpts = append(xzOpts, WithTimeout(cfg.Timeout))
		}
		xzOpts = append(xzOpts, opts...)
		return NewXZ(xzOpts...), nil
	case BackendNative:
		return NewNative(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
