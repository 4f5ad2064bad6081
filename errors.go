package paybysquare

import (
	"errors"

	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

var (
	// ErrValidation is matched by every instruction validation failure.
	ErrValidation = payment.ErrInvalidInstruction
	// ErrCompressorUnavailable is returned when no LZMA backend can run.
	ErrCompressorUnavailable = lzma.ErrCompressorUnavailable
	// ErrCompressionFailed is returned when the LZMA backend fails.
	ErrCompressionFailed = lzma.ErrCompressionFailed
	// ErrNoStorage is returned by Store when the Generator has no storage.
	ErrNoStorage = errors.New("no storage configured")
)

// IsValidationError reports whether err is an instruction validation failure.
func IsValidationError(err error) bool {
	return payment.IsValidationError(err)
}
