package render

import "errors"

var (
	// ErrInvalidSize is returned for a QR edge length below 1 px.
	ErrInvalidSize = errors.New("render: size must be at least 1")
	// ErrUnknownStyle is returned for a style outside the supported set.
	ErrUnknownStyle = errors.New("render: unknown style")
	// ErrEncodeFailed is returned when an image cannot be encoded.
	ErrEncodeFailed = errors.New("render: failed to encode image")
)
