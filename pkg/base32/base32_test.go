package base32_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/paybysquare/pkg/base32"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "nil input", input: nil, want: ""},
		{name: "empty input", input: []byte{}, want: ""},
		{name: "single 0xFF", input: []byte{0xFF}, want: "VS"},
		{name: "single zero byte", input: []byte{0x00}, want: "00"},
		{name: "ascii word", input: []byte("hello"), want: "D1IMOR3F"},
		{name: "exact 40 bits", input: []byte{0x01, 0x02, 0x03, 0x04, 0x05}, want: "04106105"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base32.Encode(tt.input))
		})
	}
}

func TestEncodeLength(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 64; n++ {
		src := bytes.Repeat([]byte{0xA5}, n)
		got := base32.Encode(src)
		want := (n*8 + 4) / 5

		assert.Len(t, got, want, "input length %d", n)
		assert.Equal(t, want, base32.EncodedLen(n))
	}
}

func TestEncodeAlphabet(t *testing.T) {
	t.Parallel()

	src := make([]byte, 256)
	for i := range src {
		src[i] = byte(i)
	}

	for _, r := range base32.Encode(src) {
		assert.True(t, strings.ContainsRune(base32.Alphabet, r), "unexpected character %q", r)
	}
}

func TestEncodeAllOnes(t *testing.T) {
	t.Parallel()

	// 40 set bits split into eight full groups of 31.
	assert.Equal(t, "VVVVVVVV", base32.Encode(bytes.Repeat([]byte{0xFF}, 5)))
}
