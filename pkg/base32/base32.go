// Package base32 implements the base-32 text encoding used by PAY by square.
//
// The alphabet is "0123456789ABCDEFGHIJKLMNOPQRSTUV", which is the RFC 4648
// "extended hex" alphabet without padding characters. Input bytes are read as
// one big-endian bit string and emitted in 5-bit groups; the final group is
// padded on the right with zero bits.
//
//	base32.Encode([]byte{0xFF}) // "VS"
//
// Only encoding is provided.
package base32

// Alphabet maps 5-bit group values to output characters.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

// EncodedLen returns the length of the encoding of n input bytes.
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// Encode returns the base-32 text for src.
func Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	dst := make([]byte, 0, EncodedLen(len(src)))

	var (
		buf   uint32 // pending bits, right aligned
		nbits uint
	)
	for _, b := range src {
		buf = buf<<8 | uint32(b)
		nbits += 8
		for nbits >= 5 {
			nbits -= 5
			dst = append(dst, Alphabet[(buf>>nbits)&0x1f])
		}
		buf &= 1<<nbits - 1
	}

	if nbits > 0 {
		dst = append(dst, Alphabet[(buf<<(5-nbits))&0x1f])
	}

	return string(dst)
}
