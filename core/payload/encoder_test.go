package payload_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paybysquare/core/payload"
	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/internal/lzmatest"
	"github.com/dmitrymomot/paybysquare/pkg/base32"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

const goldenText = "000600001GMUU7M68PTOU05B4M236G1RUVN8NBFI5GFP9IGRHLMBOIR3ORH8DLBF4NVQ8PQVAK57FOTPBAKRK232E6I07TFK88CV7SFL7JTMKQ9SJNCHQ4QVVRLAO00"

var dueDate = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

func TestEncodeGoldenWithXZ(t *testing.T) {
	t.Parallel()

	path := lzmatest.RequireXZ(t)
	enc := payload.NewEncoder(payload.WithCompressor(lzma.NewXZ(lzma.WithPath(path))))

	text, err := enc.Encode(context.Background(), referenceInstruction(payment.WithDueDate(dueDate)))
	require.NoError(t, err)
	assert.Equal(t, goldenText, text)
}

func TestEncodeNativeRoundTrip(t *testing.T) {
	t.Parallel()

	enc := payload.NewEncoder(payload.WithCompressor(lzma.NewNative()))
	in := referenceInstruction(payment.WithDueDate(dueDate))

	text, err := enc.Encode(context.Background(), in)
	require.NoError(t, err)

	frame := decodeBase32(t, text)
	require.GreaterOrEqual(t, len(frame), 4)
	assert.Equal(t, []byte{0x00, 0x00, 0x60, 0x00}, frame[:4])

	data := lzmatest.Decode(t, frame[4:])
	assert.Equal(t, enc.Payload(in), data)
	require.Len(t, data, 96)
	assert.Equal(t, []byte{0x18, 0xb5, 0xf0, 0xf4}, data[:4])
	assert.True(t, strings.HasPrefix(string(data[4:]), "\t1\t1\t49.99\tEUR\t20241231\t"))
}

func TestEncodeIsDeterministic(t *testing.T) {
	t.Parallel()

	enc := payload.NewEncoder(payload.WithCompressor(lzma.NewNative()))
	in := referenceInstruction(payment.WithDueDate(dueDate))

	first, err := enc.Encode(context.Background(), in)
	require.NoError(t, err)
	second, err := enc.Encode(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEncodeFrameLayout(t *testing.T) {
	t.Parallel()

	var got []byte
	fake := lzma.CompressorFunc(func(_ context.Context, data []byte) ([]byte, error) {
		got = append([]byte(nil), data...)
		return []byte{0xAB, 0xCD}, nil
	})

	enc := payload.NewEncoder(payload.WithCompressor(fake))
	in := referenceInstruction(payment.WithDueDate(dueDate))

	text, err := enc.Encode(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, enc.Payload(in), got)
	assert.Equal(t, base32.Encode([]byte{0x00, 0x00, 0x60, 0x00, 0xAB, 0xCD}), text)
}

func TestEncodeUsesClockWhenNoDueDate(t *testing.T) {
	t.Parallel()

	// 23:30 UTC is already the next day at UTC+1.
	clock := func() time.Time { return time.Date(2025, 3, 14, 23, 30, 0, 0, time.UTC) }
	loc := time.FixedZone("CET", 3600)

	enc := payload.NewEncoder(
		payload.WithCompressor(lzma.NewNative()),
		payload.WithClock(clock),
		payload.WithLocation(loc),
	)

	in := referenceInstruction()
	assert.Equal(t, "20250315", enc.DueDate(in))
	assert.Equal(t, "20241231", enc.DueDate(in.With(payment.WithDueDate(dueDate))))
	assert.Contains(t, string(enc.Payload(in)), "\t20250315\t")
}

func TestEncodeValidationSkipsCompression(t *testing.T) {
	t.Parallel()

	called := false
	fake := lzma.CompressorFunc(func(context.Context, []byte) ([]byte, error) {
		called = true
		return nil, nil
	})

	enc := payload.NewEncoder(payload.WithCompressor(fake))
	_, err := enc.Encode(context.Background(), referenceInstruction(payment.WithAmount(0)))

	require.Error(t, err)
	assert.True(t, payment.IsValidationError(err))
	assert.False(t, called)
}

func TestEncodeCompressorFailure(t *testing.T) {
	t.Parallel()

	fake := lzma.CompressorFunc(func(context.Context, []byte) ([]byte, error) {
		return nil, lzma.ErrCompressorUnavailable
	})

	enc := payload.NewEncoder(payload.WithCompressor(fake))
	_, err := enc.Encode(context.Background(), referenceInstruction())

	require.Error(t, err)
	assert.True(t, errors.Is(err, lzma.ErrCompressorUnavailable))
	assert.False(t, payment.IsValidationError(err))
}

func TestEncodeTooLarge(t *testing.T) {
	t.Parallel()

	called := false
	fake := lzma.CompressorFunc(func(context.Context, []byte) ([]byte, error) {
		called = true
		return nil, nil
	})

	// Only the note is length-limited, so the currency field can grow freely.
	enc := payload.NewEncoder(payload.WithCompressor(fake))
	_, err := enc.Encode(context.Background(), referenceInstruction(payment.WithCurrency(strings.Repeat("X", 70000))))

	require.ErrorIs(t, err, payload.ErrPayloadTooLarge)
	assert.False(t, called)
}

func decodeBase32(t *testing.T, s string) []byte {
	t.Helper()

	var (
		out   []byte
		buf   uint32
		nbits uint
	)
	for _, r := range s {
		idx := strings.IndexRune(base32.Alphabet, r)
		require.GreaterOrEqual(t, idx, 0, "invalid character %q", r)

		buf = buf<<5 | uint32(idx)
		nbits += 5
		if nbits >= 8 {
			nbits -= 8
			out = append(out, byte(buf>>nbits))
			buf &= 1<<nbits - 1
		}
	}
	return out
}
