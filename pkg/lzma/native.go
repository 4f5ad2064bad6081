package lzma

import (
	"bytes"
	"context"
	"fmt"

	xzlzma "github.com/ulikunitz/xz/lzma"
)

// classicHeaderLen is the size of the .lzma header written by the encoder:
// one properties byte, a 4-byte dictionary size and an 8-byte stream size.
const classicHeaderLen = 13

// Native compresses in-process without any external binary.
type Native struct{}

// NewNative creates an in-process compressor.
func NewNative() *Native {
	return &Native{}
}

// Check always succeeds.
func (*Native) Check(context.Context) error {
	return nil
}

// Compress encodes data as a raw LZMA1 stream terminated by an end marker.
func (*Native) Compress(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompressionFailed, err)
	}

	cfg := xzlzma.WriterConfig{
		Properties: &xzlzma.Properties{
			LC: LiteralContextBits,
			LP: LiteralPositionBits,
			PB: PositionBits,
		},
		DictCap:   DictionarySize,
		EOSMarker: true,
	}

	var buf bytes.Buffer
	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressionFailed, err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressionFailed, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressionFailed, err)
	}

	if buf.Len() <= classicHeaderLen {
		return nil, fmt.Errorf("%w: empty output", ErrCompressionFailed)
	}

	return bytes.Clone(buf.Bytes()[classicHeaderLen:]), nil
}

var _ interface {
	Compressor
	Checker
} = (*Native)(nil)
