// Package render composes styled PAY by square images from QR rasters.
//
// Four styles are supported:
//
//   - StyleDefault: the raw QR raster.
//   - StyleTransparent: dark modules on a transparent background.
//   - StyleBorderedCard: the QR inside a rounded blue card with a
//     "PAY by square" caption.
//   - StyleBorderedCardTransparent: the same card with a transparent interior.
//
// The card is drawn with fogleman/gg, the caption uses the Go Regular font,
// and PNG encoding goes through disintegration/imaging.
//
//	c := render.NewCompositor(qrcode.NewRasterizer())
//	img, err := c.Render(ctx, text, 300, render.StyleBorderedCard)
//	if err != nil {
//		return err
//	}
//	return render.EncodePNG(w, img)
package render
