package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paybysquare/core/render"
)

func TestCardGeometry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size int
		want render.Geometry
	}{
		{
			size: 300,
			want: render.Geometry{
				Size: 300, Padding: 21, BorderWidth: 4, CornerRadius: 18,
				FooterHeight: 42, Width: 342, Height: 384, FontSize: 17,
			},
		},
		{
			size: 100,
			want: render.Geometry{
				Size: 100, Padding: 7, BorderWidth: 2, CornerRadius: 6,
				FooterHeight: 14, Width: 114, Height: 128, FontSize: 6,
			},
		},
		{
			size: 1000,
			want: render.Geometry{
				Size: 1000, Padding: 70, BorderWidth: 12, CornerRadius: 60,
				FooterHeight: 140, Width: 1140, Height: 1280, FontSize: 55,
			},
		},
	}

	for _, tt := range tests {
		got := render.CardGeometry(tt.size)
		assert.Equal(t, tt.want, got, "size %d", tt.size)
	}

	g := render.CardGeometry(300)
	assert.Equal(t, 14, g.InnerRadius())
	assert.Equal(t, 352, g.FooterCenterY())
	assert.Equal(t, 4, render.CardGeometry(100).InnerRadius())
}

func TestFillRoundedRect(t *testing.T) {
	t.Parallel()

	red := color.NRGBA{R: 255, A: 255}

	t.Run("rounded corners", func(t *testing.T) {
		t.Parallel()

		dst := image.NewNRGBA(image.Rect(0, 0, 40, 40))
		render.FillRoundedRect(dst, 0, 0, 39, 39, 10, red)

		assert.Equal(t, red, dst.NRGBAAt(20, 20))
		assert.Equal(t, red, dst.NRGBAAt(0, 20))
		assert.Equal(t, red, dst.NRGBAAt(20, 0))
		assert.Equal(t, red, dst.NRGBAAt(39, 20))
		assert.Zero(t, dst.NRGBAAt(0, 0).A)
		assert.Zero(t, dst.NRGBAAt(39, 39).A)
	})

	t.Run("zero radius is a plain rectangle", func(t *testing.T) {
		t.Parallel()

		dst := image.NewNRGBA(image.Rect(0, 0, 20, 20))
		render.FillRoundedRect(dst, 2, 2, 17, 17, 0, red)

		assert.Equal(t, red, dst.NRGBAAt(2, 2))
		assert.Equal(t, red, dst.NRGBAAt(17, 17))
		assert.Zero(t, dst.NRGBAAt(1, 1).A)
		assert.Zero(t, dst.NRGBAAt(18, 18).A)
	})

	t.Run("radius clamped by short side", func(t *testing.T) {
		t.Parallel()

		// Two rows high: the clamped radius is 0, so corners stay square.
		dst := image.NewNRGBA(image.Rect(0, 0, 20, 20))
		render.FillRoundedRect(dst, 0, 0, 19, 1, 50, red)

		assert.Equal(t, red, dst.NRGBAAt(0, 0))
		assert.Equal(t, red, dst.NRGBAAt(19, 1))
		assert.Zero(t, dst.NRGBAAt(0, 2).A)
	})

	t.Run("offset destination bounds", func(t *testing.T) {
		t.Parallel()

		dst := image.NewNRGBA(image.Rect(10, 10, 30, 30))
		render.FillRoundedRect(dst, 12, 12, 27, 27, 0, red)

		assert.Equal(t, red, dst.NRGBAAt(12, 12))
		assert.Zero(t, dst.NRGBAAt(11, 11).A)
	})
}
