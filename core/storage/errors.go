package storage

import "errors"

var (
	ErrInvalidPath        = errors.New("storage: invalid path")
	ErrNotFound           = errors.New("storage: object not found")
	ErrOperationTimeout   = errors.New("storage: operation timed out")
	ErrOperationCanceled  = errors.New("storage: operation canceled")
	ErrAccessDenied       = errors.New("storage: access denied")
	ErrServiceUnavailable = errors.New("storage: service unavailable")
	ErrBucketNotFound     = errors.New("storage: bucket not found")
	ErrInvalidConfig      = errors.New("storage: invalid configuration")
	ErrWriteFailed        = errors.New("storage: write failed")
)
