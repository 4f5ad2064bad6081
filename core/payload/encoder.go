package payload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/pkg/base32"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

// Encoder produces PAY by square text. It is safe for concurrent use.
type Encoder struct {
	compressor lzma.Compressor
	now        func() time.Time
	location   *time.Location
	logger     *slog.Logger
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithCompressor sets the LZMA backend. The default is lzma.NewXZ().
func WithCompressor(c lzma.Compressor) Option {
	return func(e *Encoder) {
		if c != nil {
			e.compressor = c
		}
	}
}

// WithClock sets the time source used when an instruction has no due date.
func WithClock(now func() time.Time) Option {
	return func(e *Encoder) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLocation sets the time zone of the implicit due date.
func WithLocation(loc *time.Location) Option {
	return func(e *Encoder) {
		if loc != nil {
			e.location = loc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Encoder) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		now:      time.Now,
		location: time.Local,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.compressor == nil {
		e.compressor = lzma.NewXZ(lzma.WithLogger(e.logger))
	}
	return e
}

// Compressor returns the configured backend.
func (e *Encoder) Compressor() lzma.Compressor {
	return e.compressor
}

// DueDate returns the record date for in: its own due date, or today on the
// encoder clock.
func (e *Encoder) DueDate(in payment.Instruction) string {
	if due, ok := in.DueDate(); ok {
		return due.Format(DateLayout)
	}
	return e.now().In(e.location).Format(DateLayout)
}

// Payload returns the uncompressed payload: checksum followed by the outer record.
// in is not validated.
func (e *Encoder) Payload(in payment.Instruction) []byte {
	outer := OuterRecord(InnerRecord(in, e.DueDate(in)))
	sum := Checksum(outer)

	data := make([]byte, 0, len(sum)+len(outer))
	data = append(data, sum[:]...)
	return append(data, outer...)
}

// Encode validates in and returns its PAY by square text. Validation failures
// are returned as *payment.ValidationError before any compression happens.
func (e *Encoder) Encode(ctx context.Context, in payment.Instruction) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	data := e.Payload(in)
	header, err := Header(len(data))
	if err != nil {
		return "", err
	}

	start := time.Now()
	compressed, err := e.compressor.Compress(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to compress payload: %w", err)
	}

	frame := make([]byte, 0, len(header)+len(compressed))
	frame = append(frame, header[:]...)
	frame = append(frame, compressed...)

	text := base32.Encode(frame)
	e.logger.DebugContext(ctx, "payload encoded",
		logger.PayloadLength(len(data)),
		logger.BytesOut(int64(len(text))),
		logger.Elapsed(start),
	)
	return text, nil
}
