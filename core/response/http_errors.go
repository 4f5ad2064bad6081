package response

import "net/http"

// HTTPError represents a structured error response that implements the error interface.
type HTTPError struct {
	Status  int            `json:"-"`                 // HTTP status code (not in JSON)
	Code    string         `json:"code"`              // Machine-readable error code
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Optional context
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

func newHTTPError(status int, code string) HTTPError {
	return HTTPError{Status: status, Code: code, Message: http.StatusText(status)}
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest          = newHTTPError(http.StatusBadRequest, "BAD_REQUEST")
	ErrNotFound            = newHTTPError(http.StatusNotFound, "NOT_FOUND")
	ErrMethodNotAllowed    = newHTTPError(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
	ErrUnprocessableEntity = newHTTPError(http.StatusUnprocessableEntity, "UNPROCESSABLE_ENTITY")
	ErrInternalServerError = newHTTPError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR")
	ErrServiceUnavailable  = newHTTPError(http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE")
)
