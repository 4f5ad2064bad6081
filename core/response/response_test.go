package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paybysquare/core/response"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, response.JSON(rec, 0, map[string]int{"size": 300}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"size":300}`, rec.Body.String())
}

func TestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "http error",
			err:        response.ErrBadRequest.WithMessage("invalid size"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "invalid size",
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("handler: %w", response.ErrServiceUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
			wantMsg:    "Service Unavailable",
		},
		{
			name:       "plain error is hidden",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			require.NoError(t, response.Error(rec, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestErrorDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := response.ErrUnprocessableEntity.WithDetails(map[string]any{"errors": []string{"a", "b"}})
	require.NoError(t, response.Error(rec, err))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t,
		`{"code":"UNPROCESSABLE_ENTITY","message":"Unprocessable Entity","details":{"errors":["a","b"]}}`,
		rec.Body.String())
}

func TestBytesAndString(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	require.NoError(t, response.Bytes(rec, 0, "image/png", []byte{0x89, 'P', 'N', 'G'}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())

	rec = httptest.NewRecorder()
	require.NoError(t, response.String(rec, http.StatusServiceUnavailable, "NOT READY"))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "NOT READY", rec.Body.String())
}
