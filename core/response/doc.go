// Package response writes HTTP responses for net/http handlers: JSON bodies,
// raw bytes with a content type, and structured JSON errors.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		if bad {
//			response.Error(w, response.ErrBadRequest.WithMessage("size must be a number"))
//			return
//		}
//		response.JSON(w, http.StatusOK, result)
//	}
//
// Error renders HTTPError values as {"code","message","details"} with their own
// status. Any other error becomes a generic 500 so internal causes never leak
// to clients; callers log the cause themselves.
package response
