// Package async runs error-returning functions on their own goroutine and
// lets the caller wait for the outcome later.
//
// It is used where two sides of an exchange must progress together, for
// example feeding a child process's stdin while its stdout is being drained:
//
//	feed := async.Exec(ctx, data, func(ctx context.Context, b []byte) error {
//		defer stdin.Close()
//		_, err := stdin.Write(b)
//		return err
//	})
//	out, readErr := io.ReadAll(stdout)
//	writeErr := feed.Await()
//
// Waiting can be bounded with AwaitWithTimeout (ErrTimeout on expiry) or
// AwaitContext. ExecAll waits for several futures and returns the first
// error in argument order.
package async
