package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
)

// Object describes a stored blob.
type Object struct {
	Key         string
	Size        int64
	ContentType string
	URL         string
}

// Storage stores and retrieves blobs by key.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// CleanKey normalizes key and rejects empty keys and parent references.
func CleanKey(key string) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" || strings.Contains(key, "..") || strings.ContainsRune(key, '\\') {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, key)
	}
	return path.Clean(key), nil
}

// JoinURL joins base and key with exactly one slash. An empty base yields
// an empty URL.
func JoinURL(base, key string) string {
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
