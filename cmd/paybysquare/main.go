// Command paybysquare encodes PAY by square payment orders, renders them as
// QR images and serves the HTTP API.
//
//	paybysquare encode --iban SK7700000000000000000000 --amount 49.99 --vs 20240001
//	paybysquare render --iban SK77... --amount 49.99 --style bordered_card --out qr.png
//	paybysquare serve
//
// Exit status is 2 for invalid payment data and 1 for any other failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/paybysquare"
	"github.com/dmitrymomot/paybysquare/core/payment"
)

// Exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI and maps the outcome to an exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.RunContext(ctx, args)
	if err == nil {
		return exitOK
	}

	var verr *payment.ValidationError
	if errors.As(err, &verr) {
		for _, msg := range verr.Messages() {
			fmt.Fprintln(stderr, "invalid payment:", msg)
		}
		return exitValidation
	}
	if paybysquare.IsValidationError(err) {
		fmt.Fprintln(stderr, "invalid payment:", err)
		return exitValidation
	}

	fmt.Fprintln(stderr, "error:", err)
	return exitFailure
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "paybysquare",
		Usage:     "PAY by square payment QR codes",
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are decided by run.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			encodeCommand(),
			renderCommand(),
			serveCommand(),
		},
	}
}
