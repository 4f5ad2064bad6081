package render

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/pkg/qrcode"
)

// Rasterizer produces a size x size QR raster for text.
type Rasterizer interface {
	Rasterize(text string, size int) (image.Image, error)
}

// Compositor applies a Style to QR rasters. It is safe for concurrent use.
type Compositor struct {
	rasterizer Rasterizer
	logger     *slog.Logger
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compositor) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCompositor creates a Compositor. A nil rasterizer selects
// qrcode.NewRasterizer().
func NewCompositor(r Rasterizer, opts ...Option) *Compositor {
	if r == nil {
		r = qrcode.NewRasterizer()
	}
	c := &Compositor{
		rasterizer: r,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Render rasterizes text at size px and applies style. Card styles return an
// image larger than size; see CardGeometry.
func (c *Compositor) Render(ctx context.Context, text string, size int, style Style) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	p, ok := params[style]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStyle, uint8(style))
	}

	start := time.Now()
	qr, err := c.rasterizer.Rasterize(text, size)
	if err != nil {
		return nil, err
	}

	if p.transparentQR {
		qr = Transparentize(qr)
	}

	img := qr
	if p.bordered {
		img, err = card(qr, CardGeometry(size), p)
		if err != nil {
			return nil, err
		}
	}

	c.logger.DebugContext(ctx, "qr rendered",
		logger.Style(style.String()),
		logger.Size(size),
		logger.Elapsed(start),
	)
	return img, nil
}

// card draws qr on a rounded card with a caption band below it.
func card(qr image.Image, g Geometry, p styleParams) (image.Image, error) {
	dc := gg.NewContext(g.Width, g.Height)

	x1, y1 := g.BorderWidth, g.BorderWidth
	x2, y2 := g.Width-1-g.BorderWidth, g.Height-1-g.BorderWidth

	if p.transparentInterior {
		hole := gg.NewContext(g.Width, g.Height)
		roundedRectPath(hole, x1, y1, x2, y2, g.InnerRadius())
		hole.SetColor(White)
		hole.Fill()
		if err := dc.SetMask(hole.AsMask()); err != nil {
			return nil, fmt.Errorf("render: failed to set mask: %w", err)
		}
		dc.InvertMask()
	}

	roundedRectPath(dc, 0, 0, g.Width-1, g.Height-1, g.CornerRadius)
	dc.SetColor(BorderColor)
	dc.Fill()
	dc.ResetClip()

	if !p.transparentInterior {
		roundedRectPath(dc, x1, y1, x2, y2, g.InnerRadius())
		dc.SetColor(White)
		dc.Fill()
	}

	dc.DrawImage(qr, g.Padding, g.Padding)

	if err := drawFooter(dc, g); err != nil {
		return nil, err
	}
	return imaging.Clone(dc.Image()), nil
}
