package qrcode

import (
	"io"

	svgo "github.com/ajstarks/svgo"
)

// QuietZone is the module count of the blank margin around SVG output.
const QuietZone = 4

// SVG writes text as an SVG document with moduleSize px per module and a
// QuietZone margin. Horizontal runs of dark modules become single rects.
func SVG(w io.Writer, text string, moduleSize int) error {
	return NewRasterizer().SVG(w, text, moduleSize)
}

// SVG is the method form of the package-level SVG using r's level.
func (r *Rasterizer) SVG(w io.Writer, text string, moduleSize int) error {
	if moduleSize < 1 {
		return ErrInvalidSize
	}

	bitmap, err := r.Bitmap(text)
	if err != nil {
		return err
	}

	side := (len(bitmap) + 2*QuietZone) * moduleSize
	canvas := svgo.New(w)
	canvas.Startview(side, side, 0, 0, side, side)
	canvas.Rect(0, 0, side, side, "fill:#ffffff")
	canvas.Gstyle("fill:#000000")

	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			canvas.Rect(
				(start+QuietZone)*moduleSize,
				(y+QuietZone)*moduleSize,
				(x-start)*moduleSize,
				moduleSize,
			)
		}
	}

	canvas.Gend()
	canvas.End()
	return nil
}
