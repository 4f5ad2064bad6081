package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/core/response"
)

// Check reports whether a dependency is usable.
type Check func(context.Context) error

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
// Checks run in order and stop at the first failure.
func Readiness(log *slog.Logger, checks ...Check) http.Handler {
	if log == nil {
		log = logger.Discard()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				_ = response.Error(w, response.ErrServiceUnavailable)
				return
			}
		}
		_ = response.String(w, http.StatusOK, "READY")
	})
}
