package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Default permissions for created directories and files.
const (
	DefaultDirPerm  fs.FileMode = 0o755
	DefaultFilePerm fs.FileMode = 0o644
)

var _ Storage = (*Local)(nil)

// Local stores objects as files below a root directory.
type Local struct {
	root     string
	baseURL  string
	dirPerm  fs.FileMode
	filePerm fs.FileMode
}

// LocalOption configures Local.
type LocalOption func(*Local)

// WithBaseURL sets the public prefix returned by URL.
func WithBaseURL(base string) LocalOption {
	return func(l *Local) {
		l.baseURL = base
	}
}

// WithPermissions overrides directory and file permissions.
func WithPermissions(dir, file fs.FileMode) LocalOption {
	return func(l *Local) {
		l.dirPerm = dir
		l.filePerm = file
	}
}

// LocalConfig configures local storage from the environment.
type LocalConfig struct {
	Dir     string `env:"STORAGE_LOCAL_DIR" envDefault:"./storage"`
	BaseURL string `env:"STORAGE_LOCAL_BASE_URL"`
}

// DefaultLocalConfig stores under ./storage with no public URL.
func DefaultLocalConfig() LocalConfig {
	return LocalConfig{Dir: "./storage"}
}

// NewLocal creates the root directory if needed and returns a Local store.
func NewLocal(root string, opts ...LocalOption) (*Local, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty root directory", ErrInvalidConfig)
	}

	l := &Local{
		root:     filepath.Clean(root),
		dirPerm:  DefaultDirPerm,
		filePerm: DefaultFilePerm,
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := os.MkdirAll(l.root, l.dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return l, nil
}

// NewLocalFromConfig builds a Local store from cfg.
func NewLocalFromConfig(cfg LocalConfig) (*Local, error) {
	return NewLocal(cfg.Dir, WithBaseURL(cfg.BaseURL))
}

// Put writes data to key, replacing any existing file. The write goes to a
// temporary file first so readers never see partial content.
func (l *Local) Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	key, full, err := l.resolve(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(full), l.dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(full), ".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Chmod(tmp.Name(), l.filePerm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Rename(tmp.Name(), full); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return &Object{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: contentType,
		URL:         l.URL(key),
	}, nil
}

// Get opens the file stored under key.
func (l *Local) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	_, full, err := l.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, classifyFSError(err, key)
	}
	return f, nil
}

// Exists reports whether a regular file is stored under key.
func (l *Local) Exists(ctx context.Context, key string) (bool, error) {
	if err := ctxErr(ctx); err != nil {
		return false, err
	}
	_, full, err := l.resolve(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, classifyFSError(err, key)
	}
	return info.Mode().IsRegular(), nil
}

// Delete removes the file stored under key.
func (l *Local) Delete(ctx context.Context, key string) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	_, full, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil {
		return classifyFSError(err, key)
	}
	return nil
}

// URL returns the public URL of key, or "" without a base URL.
func (l *Local) URL(key string) string {
	return JoinURL(l.baseURL, key)
}

// Root returns the storage directory.
func (l *Local) Root() string {
	return l.root
}

func (l *Local) resolve(key string) (string, string, error) {
	key, err := CleanKey(key)
	if err != nil {
		return "", "", err
	}
	return key, filepath.Join(l.root, filepath.FromSlash(key)), nil
}

func classifyFSError(err error, key string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrAccessDenied, key)
	default:
		return fmt.Errorf("storage: %s: %w", key, err)
	}
}

func ctxErr(ctx context.Context) error {
	switch err := ctx.Err(); {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrOperationTimeout, err)
	case err != nil:
		return fmt.Errorf("%w: %w", ErrOperationCanceled, err)
	}
	return nil
}
