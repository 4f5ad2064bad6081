package lzma

import "errors"

var (
	// ErrCompressorUnavailable is returned when no usable xz binary can be located.
	ErrCompressorUnavailable = errors.New("lzma compressor unavailable")
	// ErrCompressionFailed is returned when the compressor runs but fails,
	// times out or produces no output.
	ErrCompressionFailed = errors.New("lzma compression failed")
	// ErrUnknownBackend is returned by NewFromConfig for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown lzma backend")
)
