package payload

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/dmitrymomot/paybysquare/core/payment"
)

// MaxPayloadLength is the largest uncompressed payload the header can describe.
const MaxPayloadLength = 0xFFFF

// DateLayout is the due date format inside the record.
const DateLayout = "20060102"

// InnerRecord joins the 14 fields of a single payment order with tabs.
// date must already be formatted with DateLayout.
func InnerRecord(in payment.Instruction, date string) string {
	return strings.Join([]string{
		"1", // payment count
		in.Amount().String(),
		in.Currency(),
		date,
		in.VariableSymbol(),
		in.ConstantSymbol(),
		in.SpecificSymbol(),
		"", // payer reference
		in.Note(),
		"1", // bank account count
		in.IBAN(),
		in.SWIFT(),
		"0", // standing order extension
		"0", // direct debit extension
	}, "\t")
}

// OuterRecord wraps the inner record with an empty invoice id and a
// one-payment counter.
func OuterRecord(inner string) string {
	return "\t1\t" + inner
}

// Checksum returns the IEEE CRC-32 of outer in little-endian byte order.
func Checksum(outer string) [4]byte {
	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], crc32.ChecksumIEEE([]byte(outer)))
	return sum
}

// Header returns the frame header for an uncompressed payload of n bytes.
func Header(n int) ([4]byte, error) {
	if n < 0 || n > MaxPayloadLength {
		return [4]byte{}, fmt.Errorf("%w: %d bytes, limit is %d", ErrPayloadTooLarge, n, MaxPayloadLength)
	}
	return [4]byte{0x00, 0x00, byte(n & 0xFF), byte(n >> 8)}, nil
}
