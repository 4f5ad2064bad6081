package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// fontDPI matches the resolution the caption sizes were tuned for.
const fontDPI = 96

var (
	fontOnce   sync.Once
	regular    *truetype.Font
	regularErr error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// newFace returns a Go Regular face of size points. Faces cache glyphs and
// must not be shared between goroutines.
func newFace(size int) (font.Face, error) {
	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	}), nil
}
