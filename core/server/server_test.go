package server_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paybysquare/core/server"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func waitRunning(t *testing.T, srv *server.Server) {
	t.Helper()
	require.Eventually(t, srv.Running, 2*time.Second, 10*time.Millisecond)
}

func TestServerRun(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0", server.WithShutdownTimeout(time.Second))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitRunning(t, srv)

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.False(t, srv.Running())
}

func TestServerStartTwice(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = srv.Stop()
	})

	go func() { _ = srv.Start(ctx, okHandler()) }()
	waitRunning(t, srv)

	err := srv.Start(ctx, okHandler())
	assert.ErrorIs(t, err, server.ErrServerAlreadyRunning)
}

func TestServerListenError(t *testing.T) {
	t.Parallel()

	srv := server.New("256.0.0.1:bad")
	err := srv.Start(context.Background(), okHandler())
	require.Error(t, err)
	assert.ErrorIs(t, err, server.ErrListen)
	assert.False(t, srv.Running())
}

func TestServerStopNotRunning(t *testing.T) {
	t.Parallel()

	srv := server.New(":0")
	assert.NoError(t, srv.Stop())
	assert.Equal(t, ":0", srv.Addr())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0",
		server.WithLogger(nil),
		server.WithReadTimeout(time.Second),
		server.WithWriteTimeout(time.Second),
		server.WithIdleTimeout(time.Second),
		server.WithMaxHeaderBytes(4096),
		server.WithShutdownTimeout(time.Second),
	)
	require.NotNil(t, srv)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitRunning(t, srv)
	cancel()
	assert.NoError(t, <-done)
}
