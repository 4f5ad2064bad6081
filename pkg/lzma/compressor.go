package lzma

import "context"

// Stream parameters shared by every backend.
const (
	LiteralContextBits  = 3
	LiteralPositionBits = 0
	PositionBits        = 2
	DictionarySize      = 128 << 10
)

// Compressor turns bytes into a raw LZMA1 stream.
type Compressor interface {
	Compress(ctx context.Context, data []byte) ([]byte, error)
}

// Checker is implemented by compressors that can report whether they are
// usable without compressing anything.
type Checker interface {
	Check(ctx context.Context) error
}

// CompressorFunc adapts a plain function to the Compressor interface.
type CompressorFunc func(ctx context.Context, data []byte) ([]byte, error)

// Compress calls f(ctx, data).
func (f CompressorFunc) Compress(ctx context.Context, data []byte) ([]byte, error) {
	return f(ctx, data)
}
