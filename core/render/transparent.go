package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// darkThreshold splits dark modules from the light background by red channel.
const darkThreshold = 128

// Transparentize returns a copy of src where dark pixels become opaque black
// and every other pixel becomes fully transparent.
func Transparentize(src image.Image) *image.NRGBA {
	dst := imaging.Clone(src)
	for i := 0; i+3 < len(dst.Pix); i += 4 {
		if dst.Pix[i] < darkThreshold {
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = 0, 0, 0, 0xFF
		} else {
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = 0, 0, 0, 0
		}
	}
	return dst
}
