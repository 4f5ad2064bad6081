package qrcode

import (
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length used when Generate receives zero.
const DefaultSize = 256

// Level is the error correction level.
type Level = qrcode.RecoveryLevel

// Error correction levels.
const (
	Low     Level = qrcode.Low
	Medium  Level = qrcode.Medium
	High    Level = qrcode.High
	Highest Level = qrcode.Highest
)

// Rasterizer turns text into a borderless black and white QR raster.
type Rasterizer struct {
	level Level
}

// RasterizerOption configures a Rasterizer.
type RasterizerOption func(*Rasterizer)

// WithLevel sets the error correction level. The default is Medium.
func WithLevel(level Level) RasterizerOption {
	return func(r *Rasterizer) {
		r.level = level
	}
}

// NewRasterizer creates a Rasterizer.
func NewRasterizer(opts ...RasterizerOption) *Rasterizer {
	r := &Rasterizer{level: Medium}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rasterize returns a size x size image of the QR symbol for text with no
// quiet zone. Sizes below the module count are scaled down with nearest
// neighbour sampling.
func (r *Rasterizer) Rasterize(text string, size int) (image.Image, error) {
	qr, err := r.encode(text)
	if err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, ErrInvalidSize
	}

	img := qr.Image(size)
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		return imaging.Resize(img, size, size, imaging.NearestNeighbor), nil
	}
	return img, nil
}

// Bitmap returns the module matrix of text, true for dark modules, without a
// quiet zone.
func (r *Rasterizer) Bitmap(text string) ([][]bool, error) {
	qr, err := r.encode(text)
	if err != nil {
		return nil, err
	}
	return qr.Bitmap(), nil
}

func (r *Rasterizer) encode(text string) (*qrcode.QRCode, error) {
	if text == "" {
		return nil, ErrEmptyContent
	}

	qr, err := qrcode.New(text, r.level)
	if err != nil {
		return nil, fmt.Errorf("qrcode: failed to encode content: %w", err)
	}
	qr.DisableBorder = true
	return qr, nil
}

// Generate returns a PNG of text, with a quiet zone, size pixels wide.
// Zero selects DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("qrcode: failed to generate png: %w", err)
	}
	return png, nil
}

// GenerateBase64Image returns Generate's output as a PNG data URI.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// SmallString renders text with Unicode half blocks, two modules per
// character row, for display in a terminal.
func SmallString(content string) (string, error) {
	if content == "" {
		return "", ErrEmptyContent
	}

	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("qrcode: failed to encode content: %w", err)
	}
	return qr.ToSmallString(false), nil
}
