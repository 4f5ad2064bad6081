package paybysquare

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"html"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/paybysquare/core/cache"
	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/core/payload"
	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/core/render"
	"github.com/dmitrymomot/paybysquare/core/storage"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
	"github.com/dmitrymomot/paybysquare/pkg/qrcode"
)

// PNGContentType is the media type of Render output.
const PNGContentType = "image/png"

// svgWriter is implemented by rasterizers that also emit vector output.
type svgWriter interface {
	SVG(w io.Writer, text string, moduleSize int) error
}

// Generator encodes payment instructions and renders them as QR images.
// It is safe for concurrent use.
type Generator struct {
	encoder    *payload.Encoder
	compositor *render.Compositor

	compressor   lzma.Compressor
	rasterizer   render.Rasterizer
	now          func() time.Time
	cache        cache.Cache
	cacheTTL     time.Duration
	storage      storage.Storage
	logger       *slog.Logger
	defaultSize  int
	defaultStyle render.Style
}

// New creates a Generator.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		logger:       logger.Discard(),
		defaultSize:  render.DefaultSize,
		defaultStyle: render.StyleDefault,
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if g.rasterizer == nil {
		g.rasterizer = qrcode.NewRasterizer()
	}
	g.encoder = payload.NewEncoder(
		payload.WithCompressor(g.compressor),
		payload.WithClock(g.now),
		payload.WithLogger(g.logger),
	)
	g.compressor = g.encoder.Compressor()
	g.compositor = render.NewCompositor(g.rasterizer, render.WithLogger(g.logger))

	return g, nil
}

// Compressor returns the LZMA backend in use.
func (g *Generator) Compressor() lzma.Compressor {
	return g.compressor
}

// Check reports whether the LZMA backend is usable. Backends that cannot
// tell are assumed to be.
func (g *Generator) Check(ctx context.Context) error {
	if c, ok := g.compressor.(lzma.Checker); ok {
		return c.Check(ctx)
	}
	return nil
}

// DefaultSize returns the size used for non-positive sizes.
func (g *Generator) DefaultSize() int {
	return g.defaultSize
}

// ParseStyle resolves a style name. An empty name is the default style.
func (g *Generator) ParseStyle(name string) (render.Style, error) {
	if name == "" {
		return g.defaultStyle, nil
	}
	return render.ParseStyle(name)
}

// Encode returns the PAY by square text for in.
func (g *Generator) Encode(ctx context.Context, in payment.Instruction) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	if _, ok := in.DueDate(); !ok {
		// Pin the implicit date so the cache key and the payload agree.
		due, err := time.Parse(payload.DateLayout, g.encoder.DueDate(in))
		if err != nil {
			return "", err
		}
		in = in.With(payment.WithDueDate(due))
	}

	key := textKey(g.encoder.Payload(in))
	if text, ok := g.cacheGet(ctx, key); ok {
		return string(text), nil
	}

	text, err := g.encoder.Encode(ctx, in)
	if err != nil {
		return "", err
	}

	g.cacheSet(ctx, key, []byte(text))
	return text, nil
}

// Render rasterizes text with style and returns PNG bytes.
func (g *Generator) Render(ctx context.Context, text string, size int, style render.Style) ([]byte, error) {
	if size <= 0 {
		size = g.defaultSize
	}

	key := pngKey(text, size, style)
	if data, ok := g.cacheGet(ctx, key); ok {
		return data, nil
	}

	img, err := g.compositor.Render(ctx, text, size, style)
	if err != nil {
		return nil, err
	}
	data, err := render.PNG(img)
	if err != nil {
		return nil, err
	}

	g.cacheSet(ctx, key, data)
	return data, nil
}

// PNG encodes in and renders it.
func (g *Generator) PNG(ctx context.Context, in payment.Instruction, size int, style render.Style) ([]byte, error) {
	text, err := g.Encode(ctx, in)
	if err != nil {
		return nil, err
	}
	return g.Render(ctx, text, size, style)
}

// DataURI returns the PNG as a data:image/png;base64 URI.
func (g *Generator) DataURI(ctx context.Context, in payment.Instruction, size int, style render.Style) (string, error) {
	data, err := g.PNG(ctx, in, size, style)
	if err != nil {
		return "", err
	}
	return DataURI(data), nil
}

// ImgTag returns an HTML img element embedding the PNG. Width and height are
// the image dimensions, which exceed size for card styles.
func (g *Generator) ImgTag(ctx context.Context, in payment.Instruction, size int, style render.Style, alt string) (string, error) {
	data, err := g.PNG(ctx, in, size, style)
	if err != nil {
		return "", err
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to read image dimensions: %w", err)
	}
	return fmt.Sprintf(`<img src="%s" alt="%s" width="%d" height="%d">`,
		DataURI(data), html.EscapeString(alt), cfg.Width, cfg.Height), nil
}

// SaveToFile writes the PNG to path, creating parent directories.
func (g *Generator) SaveToFile(ctx context.Context, in payment.Instruction, path string, size int, style render.Style) error {
	data, err := g.PNG(ctx, in, size, style)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	g.logger.DebugContext(ctx, "qr saved", logger.Key("path", path), logger.BytesOut(int64(len(data))))
	return nil
}

// Store writes the PNG through the configured storage. An empty key gets a
// random "<uuid>.png" name.
func (g *Generator) Store(ctx context.Context, in payment.Instruction, key string, size int, style render.Style) (*storage.Object, error) {
	if g.storage == nil {
		return nil, ErrNoStorage
	}

	data, err := g.PNG(ctx, in, size, style)
	if err != nil {
		return nil, err
	}
	return g.Put(ctx, key, data)
}

// Put writes already rendered PNG bytes through the configured storage.
// An empty key gets a random "<uuid>.png" name.
func (g *Generator) Put(ctx context.Context, key string, pngData []byte) (*storage.Object, error) {
	if g.storage == nil {
		return nil, ErrNoStorage
	}
	if key == "" {
		key = uuid.New().String() + ".png"
	}

	obj, err := g.storage.Put(ctx, key, pngData, PNGContentType)
	if err != nil {
		return nil, err
	}

	g.logger.DebugContext(ctx, "qr stored", logger.StorageKey(obj.Key), logger.BytesOut(obj.Size))
	return obj, nil
}

// HasStorage reports whether Store and Put can be used.
func (g *Generator) HasStorage() bool {
	return g.storage != nil
}

// SVG encodes in and returns a vector QR without card decoration, with
// moduleSize px per module.
func (g *Generator) SVG(ctx context.Context, in payment.Instruction, moduleSize int) ([]byte, error) {
	text, err := g.Encode(ctx, in)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if w, ok := g.rasterizer.(svgWriter); ok {
		err = w.SVG(&buf, text, moduleSize)
	} else {
		err = qrcode.SVG(&buf, text, moduleSize)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI wraps PNG bytes in a data URI.
func DataURI(pngData []byte) string {
	return "data:" + PNGContentType + ";base64," + base64.StdEncoding.EncodeToString(pngData)
}

func (g *Generator) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if g.cache == nil {
		return nil, false
	}
	data, err := g.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			g.logger.WarnContext(ctx, "cache read failed", logger.Key("key", key), logger.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (g *Generator) cacheSet(ctx context.Context, key string, value []byte) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, key, value, g.cacheTTL); err != nil {
		g.logger.WarnContext(ctx, "cache write failed", logger.Key("key", key), logger.Error(err))
	}
}

func textKey(record []byte) string {
	sum := sha256.Sum256(record)
	return "text:" + hex.EncodeToString(sum[:])
}

func pngKey(text string, size int, style render.Style) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(size)))
	h.Write([]byte{0})
	h.Write([]byte(style.String()))
	return "png:" + hex.EncodeToString(h.Sum(nil))
}
