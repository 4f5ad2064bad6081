package health

import (
	"net/http"

	"github.com/dmitrymomot/paybysquare/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
func Liveness() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = response.String(w, http.StatusOK, "ALIVE")
	})
}

// NoContent returns HTTP 204 without body. Ideal for high-frequency checks.
func NoContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}
