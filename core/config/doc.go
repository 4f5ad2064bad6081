// Package config loads environment variables into typed structs.
//
// A .env file in the working directory, when present, is loaded once on first
// use without overriding variables already set. Parsing is done by
// github.com/caarlos0/env using `env` and `envDefault` struct tags. Each
// struct type is parsed once and cached; later calls copy the cached value.
//
//	var cfg lzma.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	config.MustLoad(&cfg) // panics on error, for use in main
package config
