package middleware

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/paybysquare/core/response"
)

// DefaultBodyLimit caps request bodies when BodyLimit gets a non-positive size.
const DefaultBodyLimit int64 = 1 << 20

// ErrRequestEntityTooLarge is written when Content-Length exceeds the limit.
var ErrRequestEntityTooLarge = response.HTTPError{
	Status:  http.StatusRequestEntityTooLarge,
	Code:    "REQUEST_ENTITY_TOO_LARGE",
	Message: http.StatusText(http.StatusRequestEntityTooLarge),
}

// BodyLimit rejects requests whose declared Content-Length exceeds maxSize
// and caps the readable body at maxSize for the rest.
func BodyLimit(maxSize int64) Middleware {
	if maxSize <= 0 {
		maxSize = DefaultBodyLimit
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxSize {
				_ = response.Error(w, ErrRequestEntityTooLarge.
					WithMessage(fmt.Sprintf("request body too large, maximum allowed is %d bytes", maxSize)).
					WithDetails(map[string]any{"limit": maxSize, "size": r.ContentLength}))
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			}
			next.ServeHTTP(w, r)
		})
	}
}
