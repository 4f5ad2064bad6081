// Package logger builds slog loggers and provides attribute helpers.
//
// Loggers are configured with functional options:
//
//	log := logger.New(
//		logger.WithProduction("paybysquare"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("qr rendered",
//		logger.Component("render"),
//		logger.Style("bordered_card"),
//		logger.Size(300),
//		logger.Elapsed(start),
//	)
//
// WithDevelopment selects a text handler at debug level; WithProduction selects
// JSON at info level. Both add a "service" attribute.
//
// Attribute helpers return an empty slog.Attr for nil or empty input, which
// slog drops, so call sites need no nil checks:
//
//	log.Error("encode failed", logger.Error(err)) // no "error" key when err is nil
//
// ParseLevel maps the LOG_LEVEL strings debug, info, warn and error to slog levels.
package logger
