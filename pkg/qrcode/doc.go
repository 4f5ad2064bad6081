// Package qrcode renders text as QR codes with medium error correction.
//
// The Rasterizer produces borderless rasters of an exact pixel size, which the
// render package composes into styled images. Helpers cover PNG bytes, base64
// data URIs, a terminal-friendly text form and SVG output.
//
// # Usage
//
// Raster for further composition:
//
//	img, err := qrcode.NewRasterizer().Rasterize(text, 300)
//
// PNG bytes and data URI:
//
//	pngBytes, err := qrcode.Generate(text, 256)
//	dataURI, err := qrcode.GenerateBase64Image(text, 256)
//
// Vector output, 8 px per module:
//
//	err := qrcode.SVG(w, text, 8)
//
// # Error Handling
//
// Empty content returns ErrEmptyContent and a non-positive size returns
// ErrInvalidSize. Encoder failures, such as content exceeding QR capacity,
// are wrapped with context.
package qrcode
