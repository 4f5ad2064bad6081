// Package paybysquare generates PAY by square payment QR codes, the Slovak
// banking standard for encoding a payment order in a QR symbol.
//
// A Generator ties the pieces together: the payload encoder (core/payload),
// the LZMA backend (pkg/lzma), the styled compositor (core/render) and,
// optionally, an output cache and a blob store.
//
//	gen, err := paybysquare.New(paybysquare.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	in := payment.New(
//		payment.WithIBAN("SK7700000000000000000000"),
//		payment.WithSWIFT("CEKOSKBX"),
//		payment.WithAmount(49.99),
//		payment.WithVariableSymbol("20240001"),
//		payment.WithNote("Faktura 2024/001"),
//	)
//
//	png, err := gen.PNG(ctx, in, 300, render.StyleBorderedCard)
//	if paybysquare.IsValidationError(err) {
//		// show err to the user
//	}
//
// Validation failures wrap ErrValidation and carry every violation; see
// payment.ValidationError. Everything else is an infrastructure failure such
// as ErrCompressorUnavailable or ErrCompressionFailed.
package paybysquare
