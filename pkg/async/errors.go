package async

import "errors"

// ErrTimeout is returned by AwaitWithTimeout when the function is still running
// after the given duration.
var ErrTimeout = errors.New("async: timed out waiting for result")
