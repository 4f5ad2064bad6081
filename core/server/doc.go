// Package server wraps http.Server with graceful shutdown and functional options.
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(10*time.Second),
//		server.WithLogger(log),
//	)
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until ctx is canceled, then drains in-flight requests within the
// shutdown timeout. Start and Stop give finer control; Addr reports the bound
// address, which is useful with ":0".
//
// NewFromConfig builds a Server from a Config loaded with core/config
// (SERVER_ADDR, SERVER_READ_TIMEOUT, SERVER_WRITE_TIMEOUT, SERVER_IDLE_TIMEOUT,
// SERVER_SHUTDOWN_TIMEOUT, SERVER_MAX_HEADER_BYTES).
package server
