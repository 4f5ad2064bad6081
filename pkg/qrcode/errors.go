package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when there is nothing to encode.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrInvalidSize is returned for a non-positive size.
	ErrInvalidSize = errors.New("qrcode: size must be positive")
)
