package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// FillRoundedRect fills the rounded rectangle spanning the inclusive pixel
// corners (x1,y1) and (x2,y2) on dst. r is clamped to half the shorter side;
// below 1 the rectangle has square corners.
func FillRoundedRect(dst draw.Image, x1, y1, x2, y2, r int, c color.Color) {
	b := dst.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.Translate(float64(-b.Min.X), float64(-b.Min.Y))
	roundedRectPath(dc, x1, y1, x2, y2, r)
	dc.SetColor(c)
	dc.Fill()
	draw.Draw(dst, b, dc.Image(), image.Point{}, draw.Over)
}

// roundedRectPath adds the shape to the current path of dc as two crossing
// rectangles and four corner circles.
func roundedRectPath(dc *gg.Context, x1, y1, x2, y2, r int) {
	r = min(r, (x2-x1)/2, (y2-y1)/2)
	if r < 1 {
		rect(dc, x1, y1, x2, y2)
		return
	}

	rect(dc, x1+r, y1, x2-r, y2)
	rect(dc, x1, y1+r, x2, y2-r)
	for _, c := range [4]image.Point{
		{x1 + r, y1 + r},
		{x2 - r, y1 + r},
		{x1 + r, y2 - r},
		{x2 - r, y2 - r},
	} {
		// Centre on the pixel, not its top-left corner.
		dc.DrawCircle(float64(c.X)+0.5, float64(c.Y)+0.5, float64(r))
	}
}

// rect adds the inclusive pixel rectangle to the path.
func rect(dc *gg.Context, x1, y1, x2, y2 int) {
	if x2 < x1 || y2 < y1 {
		return
	}
	dc.DrawRectangle(float64(x1), float64(y1), float64(x2-x1+1), float64(y2-y1+1))
}
