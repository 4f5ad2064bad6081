package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paybysquare/core/storage"
)

func TestLocalPutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := storage.NewLocal(root, storage.WithBaseURL("https://cdn.example.com/qr/"))
	require.NoError(t, err)

	ctx := context.Background()
	obj, err := store.Put(ctx, "/2024/invoice-1.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, &storage.Object{
		Key:         "2024/invoice-1.png",
		Size:        9,
		ContentType: "image/png",
		URL:         "https://cdn.example.com/qr/2024/invoice-1.png",
	}, obj)

	info, err := os.Stat(filepath.Join(root, "2024", "invoice-1.png"))
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultFilePerm, info.Mode().Perm())

	rc, err := store.Get(ctx, "2024/invoice-1.png")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	ok, err := store.Exists(ctx, "2024/invoice-1.png")
	require.NoError(t, err)
	assert.True(t, ok)

	entries, err := os.ReadDir(filepath.Join(root, "2024"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestLocalOverwriteAndDelete(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Put(ctx, "a.png", []byte("one"), "image/png")
	require.NoError(t, err)
	obj, err := store.Put(ctx, "a.png", []byte("second"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, int64(6), obj.Size)
	assert.Empty(t, obj.URL)

	require.NoError(t, store.Delete(ctx, "a.png"))

	ok, err := store.Exists(ctx, "a.png")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, store.Delete(ctx, "a.png"), storage.ErrNotFound)
	_, err = store.Get(ctx, "a.png")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestLocalRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "/", "../escape.png", "a/../../b.png", `a\b.png`} {
		_, err := store.Put(ctx, key, []byte("x"), "image/png")
		assert.ErrorIs(t, err, storage.ErrInvalidPath, "key %q", key)
	}
}

func TestLocalContext(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Put(canceled, "a.png", nil, "image/png")
	assert.ErrorIs(t, err, storage.ErrOperationCanceled)

	expired, cancel2 := context.WithTimeout(context.Background(), -time.Second)
	defer cancel2()
	_, err = store.Get(expired, "a.png")
	assert.ErrorIs(t, err, storage.ErrOperationTimeout)
}

func TestNewLocal(t *testing.T) {
	t.Parallel()

	_, err := storage.NewLocal("")
	assert.ErrorIs(t, err, storage.ErrInvalidConfig)

	dir := filepath.Join(t.TempDir(), "nested", "root")
	store, err := storage.NewLocalFromConfig(storage.LocalConfig{Dir: dir, BaseURL: "http://localhost/files"})
	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, dir, store.Root())
	assert.Equal(t, "http://localhost/files/x.png", store.URL("x.png"))
}

func TestCleanKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "a.png", want: "a.png"},
		{in: "//a/b.png", want: "a/b.png"},
		{in: "a//b/./c.png", want: "a/b/c.png"},
		{in: " ", wantErr: true},
		{in: "..", wantErr: true},
	}

	for _, tt := range tests {
		got, err := storage.CleanKey(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, storage.ErrInvalidPath, "key %q", tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
