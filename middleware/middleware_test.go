package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paybysquare/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var captured string
	h := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetRequestID(r.Context())
		assert.True(t, ok)
		captured = id
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, captured, 36)
	assert.Equal(t, captured, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      middleware.RequestIDConfig
		incoming string
		want     string
		header   string
	}{
		{
			name:   "custom generator",
			cfg:    middleware.RequestIDConfig{Generator: func() string { return "fixed" }},
			want:   "fixed",
			header: "X-Request-ID",
		},
		{
			name:     "reuses incoming id",
			cfg:      middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "new" }},
			incoming: "abc-123",
			want:     "abc-123",
			header:   "X-Request-ID",
		},
		{
			name:     "ignores incoming id by default",
			cfg:      middleware.RequestIDConfig{Generator: func() string { return "new" }},
			incoming: "abc-123",
			want:     "new",
			header:   "X-Request-ID",
		},
		{
			name:   "custom header",
			cfg:    middleware.RequestIDConfig{HeaderName: "X-Trace", Generator: func() string { return "t1" }},
			want:   "t1",
			header: "X-Trace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := middleware.RequestIDWithConfig(tt.cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, _ := middleware.GetRequestID(r.Context())
				assert.Equal(t, tt.want, id)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(tt.header, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get(tt.header))
		})
	}
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	cfg := middleware.RequestIDConfig{Skip: func(r *http.Request) bool { return r.URL.Path == "/health/live" }}
	h := middleware.RequestIDWithConfig(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := middleware.GetRequestID(r.Context())
		assert.False(t, ok)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, rec.Header().Get("X-Request-ID"))
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "INFO"},
		{name: "client error", status: http.StatusUnprocessableEntity, wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))

			h := middleware.Chain(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte("body"))
				}),
				middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: func() string { return "rid-1" }}),
				middleware.Logging(log),
			)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/qr", nil))
			require.Equal(t, tt.status, rec.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, "/api/v1/qr", entry["path"])
			assert.EqualValues(t, tt.status, entry["status_code"])
			assert.EqualValues(t, 4, entry["bytes_out"])
			assert.Equal(t, "rid-1", entry["request_id"])
			assert.Contains(t, entry, "latency")
		})
	}
}

func TestLoggingImplicitStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	h := middleware.Logging(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.EqualValues(t, http.StatusOK, entry["status_code"])
	assert.NotContains(t, entry, "request_id")
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.BodyLimit(8)(echo)

	t.Run("within limit", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("iban=SK")))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("declared length too large", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("iban=SK7700000000")))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "REQUEST_ENTITY_TOO_LARGE")
	})

	t.Run("undeclared length capped while reading", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("iban=SK7700000000"))
		req.ContentLength = -1
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
