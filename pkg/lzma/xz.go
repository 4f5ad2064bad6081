package lzma

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/pkg/async"
)

// DefaultTimeout bounds a single xz invocation.
const DefaultTimeout = 10 * time.Second

// DefaultSearchPaths lists the locations probed for the xz binary, in order.
var DefaultSearchPaths = []string{
	"/usr/bin/xz",
	"/usr/local/bin/xz",
	"/opt/homebrew/bin/xz",
	"/opt/homebrew/opt/xz/bin/xz",
}

var xzArgs = []string{
	"--format=raw",
	"--lzma1=lc=3,lp=0,pb=2,dict=128KiB",
	"-c",
	"-",
}

// XZ compresses by piping data through the xz binary.
// Safe for concurrent use; every call starts its own process.
type XZ struct {
	path        string
	searchPaths []string
	lookPath    bool
	timeout     time.Duration
	logger      *slog.Logger
}

// XZOption configures an XZ compressor.
type XZOption func(*XZ)

// WithPath sets an explicit xz binary. When set, it is the only candidate.
func WithPath(path string) XZOption {
	return func(x *XZ) {
		x.path = strings.TrimSpace(path)
	}
}

// WithSearchPaths replaces DefaultSearchPaths.
func WithSearchPaths(paths ...string) XZOption {
	return func(x *XZ) {
		x.searchPaths = paths
	}
}

// WithLookPath toggles the final $PATH lookup. Enabled by default.
func WithLookPath(enabled bool) XZOption {
	return func(x *XZ) {
		x.lookPath = enabled
	}
}

// WithTimeout bounds each invocation. Zero or negative disables the bound,
// leaving only the caller's context.
func WithTimeout(timeout time.Duration) XZOption {
	return func(x *XZ) {
		x.timeout = timeout
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) XZOption {
	return func(x *XZ) {
		if l != nil {
			x.logger = l
		}
	}
}

// NewXZ creates an xz-backed compressor.
func NewXZ(opts ...XZOption) *XZ {
	x := &XZ{
		searchPaths: DefaultSearchPaths,
		lookPath:    true,
		timeout:     DefaultTimeout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Path resolves the xz binary that the next Compress call would use.
func (x *XZ) Path() (string, error) {
	if x.path != "" {
		if isExecutable(x.path) {
			return x.path, nil
		}
		return "", fmt.Errorf("%w: %s is not an executable file", ErrCompressorUnavailable, x.path)
	}

	for _, p := range x.searchPaths {
		if isExecutable(p) {
			return p, nil
		}
	}

	if x.lookPath {
		if p, err := exec.LookPath("xz"); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: xz not found (searched %s)", ErrCompressorUnavailable, strings.Join(x.searchPaths, ", "))
}

// Check reports ErrCompressorUnavailable when no binary can be resolved.
func (x *XZ) Check(context.Context) error {
	_, err := x.Path()
	return err
}

// Compress runs xz over data and returns the raw LZMA1 stream.
func (x *XZ) Compress(ctx context.Context, data []byte) ([]byte, error) {
	bin, err := x.Path()
	if err != nil {
		return nil, err
	}

	if x.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, x.timeout)
		defer cancel()
	}

	start := time.Now()

	cmd := exec.CommandContext(ctx, bin, xzArgs...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin pipe: %v", ErrCompressionFailed, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %v", ErrCompressionFailed, err)
	}

	if err := cmd.Start(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrCompressionFailed, ctxErr)
		}
		return nil, fmt.Errorf("%w: start %s: %v", ErrCompressionFailed, bin, err)
	}

	// stdin is fed concurrently so a full stdout pipe can never block the writer.
	feed := async.Exec(ctx, data, func(_ context.Context, b []byte) error {
		defer func() { _ = stdin.Close() }()
		_, err := stdin.Write(b)
		return err
	})

	out, readErr := io.ReadAll(stdout)
	writeErr := feed.Await()
	waitErr := cmd.Wait()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailed, ctxErr)
	}
	if waitErr != nil {
		return nil, fmt.Errorf("%w: %v: %s", ErrCompressionFailed, waitErr, strings.TrimSpace(stderr.String()))
	}
	if writeErr != nil {
		return nil, fmt.Errorf("%w: write input: %v", ErrCompressionFailed, writeErr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("%w: read output: %v", ErrCompressionFailed, readErr)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty output", ErrCompressionFailed)
	}

	x.logger.DebugContext(ctx, "xz compression complete",
		logger.Compressor("xz"),
		logger.Elapsed(start),
		logger.BytesIn(int64(len(data))),
		logger.BytesOut(int64(len(out))),
	)

	return out, nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

var _ interface {
	Compressor
	Checker
} = (*XZ)(nil)
