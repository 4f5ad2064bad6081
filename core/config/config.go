package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilTarget is returned when Load receives a nil pointer.
var ErrNilTarget = errors.New("config target must be a non-nil pointer")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> any (struct value)
)

// Load fills cfg from the environment. cfg must point to a struct.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	dotenvOnce.Do(func() {
		// Missing .env is the normal case outside local development.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(cfg).Elem()
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	var v T
	if err := env.Parse(&v); err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", key, err)
	}

	actual, _ := cache.LoadOrStore(key, v)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse fills cfg from the environment without consulting or updating the cache.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", reflect.TypeOf(cfg).Elem(), err)
	}
	return nil
}
