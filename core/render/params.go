package render

import (
	"image/color"
	"math"
)

// Card palette.
var (
	BorderColor      = color.NRGBA{R: 100, G: 160, B: 215, A: 255}
	FooterBackground = color.NRGBA{R: 240, G: 242, B: 245, A: 255}
	TextGray         = color.NRGBA{R: 140, G: 150, B: 165, A: 255}
	White            = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Card proportions relative to the QR edge length.
const (
	paddingRatio = 0.07
	borderRatio  = 0.012
	cornerRatio  = 0.06
	footerRatio  = 0.14
	fontRatio    = 0.055

	minBorderWidth = 2
	minFontSize    = 6
)

type styleParams struct {
	bordered            bool
	transparentQR       bool
	transparentInterior bool
}

var params = map[Style]styleParams{
	StyleDefault:                 {},
	StyleTransparent:             {transparentQR: true},
	StyleBorderedCard:            {bordered: true},
	StyleBorderedCardTransparent: {bordered: true, transparentQR: true, transparentInterior: true},
}

// Geometry holds the card measurements for one QR size, in pixels.
type Geometry struct {
	Size         int // QR edge length
	Padding      int
	BorderWidth  int
	CornerRadius int
	FooterHeight int
	Width        int
	Height       int
	FontSize     int
}

// CardGeometry computes the card layout around a size x size QR raster.
func CardGeometry(size int) Geometry {
	s := float64(size)
	g := Geometry{
		Size:         size,
		Padding:      round(s * paddingRatio),
		BorderWidth:  max(minBorderWidth, round(s*borderRatio)),
		CornerRadius: round(s * cornerRatio),
		FooterHeight: round(s * footerRatio),
		FontSize:     max(minFontSize, round(s*fontRatio)),
	}
	g.Width = size + 2*g.Padding
	g.Height = size + 2*g.Padding + g.FooterHeight
	return g
}

// InnerRadius is the corner radius of the inset interior.
func (g Geometry) InnerRadius() int {
	return max(1, g.CornerRadius-g.BorderWidth)
}

// FooterCenterY is the vertical center of the caption band.
func (g Geometry) FooterCenterY() int {
	return (g.Padding + g.Size + g.Height) / 2
}

// round rounds half away from zero.
func round(f float64) int {
	return int(math.Round(f))
}
