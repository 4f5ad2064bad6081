package render

import (
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

const (
	brandText  = "PAY"
	suffixText = " by square"
)

// footerLayout positions the caption and the card icon inside the footer band.
type footerLayout struct {
	textX    int
	suffixX  int
	baseline int

	iconX      int
	iconY      int
	iconW      int
	iconH      int
	iconRadius int
	stripeY    int
	stripeH    int
}

func layoutFooter(g Geometry, face font.Face) footerLayout {
	bounds, _ := font.BoundString(face, brandText)
	ascent := (-bounds.Min.Y).Ceil()
	descent := bounds.Max.Y.Ceil()
	textH := ascent + descent

	brandW := font.MeasureString(face, brandText).Ceil()
	suffixW := font.MeasureString(face, suffixText).Ceil()

	iconH := round(0.9 * float64(textH))
	iconW := round(1.5 * float64(iconH))
	gap := round(0.5 * float64(g.FontSize))

	cx := g.Width / 2
	cy := g.FooterCenterY()
	startX := cx - (brandW+suffixW+gap+iconW)/2

	l := footerLayout{
		textX:      startX,
		suffixX:    startX + brandW,
		baseline:   cy + (ascent-descent)/2,
		iconX:      startX + brandW + suffixW + gap,
		iconY:      cy - iconH/2,
		iconW:      iconW,
		iconH:      iconH,
		iconRadius: max(2, round(0.2*float64(iconH))),
		stripeH:    max(1, int(math.Floor(0.2*float64(iconH)))),
	}
	l.stripeY = l.iconY + int(math.Floor(0.35*float64(iconH)))
	return l
}

// drawFooter paints the "PAY by square" caption followed by a card icon.
func drawFooter(dc *gg.Context, g Geometry) error {
	face, err := newFace(g.FontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	l := layoutFooter(g, face)
	dc.SetFontFace(face)

	dc.SetColor(BorderColor)
	dc.DrawString(brandText, float64(l.textX), float64(l.baseline))
	dc.SetColor(TextGray)
	dc.DrawString(suffixText, float64(l.suffixX), float64(l.baseline))

	roundedRectPath(dc, l.iconX, l.iconY, l.iconX+l.iconW, l.iconY+l.iconH, l.iconRadius)
	dc.SetColor(BorderColor)
	dc.Fill()

	rect(dc, l.iconX, l.stripeY, l.iconX+l.iconW, l.stripeY+l.stripeH)
	dc.SetColor(White)
	dc.Fill()

	return nil
}
