// Package payload turns a payment.Instruction into PAY by square text.
//
// The text is the base-32 form of a frame made of a 4-byte header followed by
// a raw LZMA1 stream. The stream decompresses to a CRC-32 checksum followed by
// a tab-separated record describing one payment order.
//
//	enc := payload.NewEncoder(payload.WithCompressor(lzma.NewNative()))
//	text, err := enc.Encode(ctx, in)
//
// The exported record helpers expose every intermediate step for diagnostics.
package payload
