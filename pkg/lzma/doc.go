// Package lzma produces raw LZMA1 streams for PAY by square payloads.
//
// The stream uses fixed parameters (lc=3, lp=0, pb=2, 128 KiB dictionary)
// and carries no container: no magic bytes, no embedded size, no checksum.
//
// Two Compressor implementations are provided:
//
//   - XZ runs the xz binary as a subprocess. The binary is located on every
//     call: an explicit path first (WithPath), then a fixed list of install
//     locations, then $PATH.
//   - Native encodes in-process with github.com/ulikunitz/xz/lzma. Its output
//     decodes to the same bytes but is not guaranteed to match xz byte for byte.
//
// Usage:
//
//	c := lzma.NewXZ(lzma.WithTimeout(5 * time.Second))
//	raw, err := c.Compress(ctx, payload)
//	switch {
//	case errors.Is(err, lzma.ErrCompressorUnavailable):
//		// xz is not installed
//	case errors.Is(err, lzma.ErrCompressionFailed):
//		// xz ran but failed, timed out or wrote nothing
//	}
//
// Configuration from the environment:
//
//	var cfg lzma.Config
//	config.MustLoad(&cfg)
//	c, err := lzma.NewFromConfig(cfg)
package lzma
