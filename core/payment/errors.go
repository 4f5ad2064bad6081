package payment

import "errors"

var (
	// ErrInvalidInstruction is matched by every *ValidationError.
	ErrInvalidInstruction = errors.New("invalid payment instruction")
	// ErrInvalidAmount is returned by ParseAmount for malformed input.
	ErrInvalidAmount = errors.New("invalid amount")
)
