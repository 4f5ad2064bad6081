package response

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSON writes v as application/json with the given status.
// A zero status means 200 OK.
func JSON(w http.ResponseWriter, status int, v any) error {
	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Error writes err as a JSON error body. HTTPError values keep their status,
// code and details; anything else is reported as ErrInternalServerError.
func Error(w http.ResponseWriter, err error) error {
	var httpErr HTTPError
	if !errors.As(err, &httpErr) {
		httpErr = ErrInternalServerError
	}
	if httpErr.Status == 0 {
		httpErr.Status = http.StatusInternalServerError
	}
	return JSON(w, httpErr.Status, httpErr)
}

// Bytes writes data with the given content type and status.
func Bytes(w http.ResponseWriter, status int, contentType string, data []byte) error {
	if status == 0 {
		status = http.StatusOK
	}
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, err := w.Write(data)
	return err
}

// String writes s as text/plain.
func String(w http.ResponseWriter, status int, s string) error {
	return Bytes(w, status, "text/plain; charset=utf-8", []byte(s))
}
