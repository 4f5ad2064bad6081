// Package middleware provides net/http middleware for the PAY by square service.
//
//	h := middleware.Chain(mux,
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.BodyLimit(64<<10),
//	)
//
// Chain applies middleware so the first one listed runs first. RequestID stores
// the ID in the request context (see GetRequestID) and echoes it in the
// X-Request-ID response header; Logging reads it from there.
package middleware
