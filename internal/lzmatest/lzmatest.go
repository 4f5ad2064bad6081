// Package lzmatest holds test helpers for inspecting raw LZMA1 streams.
package lzmatest

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	xzlzma "github.com/ulikunitz/xz/lzma"

	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

// Decode inflates a raw stream produced with the lzma package parameters.
// It prepends a classic header with an unknown size, so the stream must end
// with an end marker, which both xz and the native encoder write.
func Decode(tb testing.TB, raw []byte) []byte {
	tb.Helper()

	hdr := make([]byte, 13)
	hdr[0] = byte((lzma.PositionBits*5+lzma.LiteralPositionBits)*9 + lzma.LiteralContextBits)
	binary.LittleEndian.PutUint32(hdr[1:5], lzma.DictionarySize)
	for i := 5; i < len(hdr); i++ {
		hdr[i] = 0xFF
	}

	r, err := xzlzma.NewReader(io.MultiReader(bytes.NewReader(hdr), bytes.NewReader(raw)))
	require.NoError(tb, err)

	out, err := io.ReadAll(r)
	require.NoError(tb, err)
	return out
}

// RequireXZ skips the test when no xz binary can be resolved and returns
// its path otherwise.
func RequireXZ(tb testing.TB) string {
	tb.Helper()

	path, err := lzma.NewXZ().Path()
	if err != nil {
		tb.Skip("xz binary not available")
	}
	return path
}
