package async

import (
	"context"
	"time"
)

// ExecFuture is the pending result of a function started with Exec.
type ExecFuture struct {
	err  error
	done chan struct{}
}

// Exec calls fn(ctx, param) on a new goroutine.
// A context that is already done short-circuits fn and records ctx.Err().
func Exec[T any](ctx context.Context, param T, fn func(context.Context, T) error) *ExecFuture {
	f := &ExecFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.err = fn(ctx, param)
	}()

	return f
}

// Await blocks until the function returns and reports its error.
func (f *ExecFuture) Await() error {
	<-f.done
	return f.err
}

// AwaitContext blocks until the function returns or ctx is done,
// whichever comes first.
func (f *ExecFuture) AwaitContext(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AwaitWithTimeout is Await bounded by timeout. It returns ErrTimeout on expiry;
// the function itself keeps running.
func (f *ExecFuture) AwaitWithTimeout(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.err
	case <-timer.C:
		return ErrTimeout
	}
}

// IsComplete reports whether the function has returned, without blocking.
func (f *ExecFuture) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// ExecAll waits for every future and returns the first non-nil error
// in argument order.
func ExecAll(futures ...*ExecFuture) error {
	var first error
	for _, f := range futures {
		if err := f.Await(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
