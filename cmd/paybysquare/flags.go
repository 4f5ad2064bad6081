package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/paybysquare"
	"github.com/dmitrymomot/paybysquare/core/logger"
	"github.com/dmitrymomot/paybysquare/core/payment"
	"github.com/dmitrymomot/paybysquare/pkg/lzma"
)

const dueLayout = "2006-01-02"

func paymentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "iban", Usage: "beneficiary IBAN"},
		&cli.StringFlag{Name: "swift", Usage: "beneficiary BIC/SWIFT"},
		&cli.StringFlag{Name: "amount", Usage: "amount, e.g. 49.99"},
		&cli.StringFlag{Name: "currency", Value: payment.DefaultCurrency, Usage: "ISO 4217 currency code"},
		&cli.StringFlag{Name: "vs", Usage: "variable symbol"},
		&cli.StringFlag{Name: "ss", Usage: "specific symbol"},
		&cli.StringFlag{Name: "cs", Usage: "constant symbol"},
		&cli.StringFlag{Name: "note", Usage: "payment note"},
		&cli.StringFlag{Name: "recipient", Usage: "beneficiary name (not encoded)"},
		&cli.StringFlag{Name: "due", Usage: "due date YYYY-MM-DD (default today)"},
	}
}

func compressorFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "compressor",
			Value:   lzma.BackendXZ,
			Usage:   "LZMA backend: xz or native",
			EnvVars: []string{"PAYBYSQUARE_COMPRESSOR"},
		},
		&cli.StringFlag{
			Name:    "xz-path",
			Usage:   "explicit xz binary",
			EnvVars: []string{"PAYBYSQUARE_XZ_PATH"},
		},
	}
}

func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"LOG_LEVEL"},
		},
	}
}

func flags(groups ...[]cli.Flag) []cli.Flag {
	var out []cli.Flag
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// instruction builds a payment instruction from flags. Malformed amount and
// date values are usage errors; rule violations are left to validation.
func instruction(c *cli.Context) (payment.Instruction, error) {
	opts := []payment.Option{
		payment.WithIBAN(c.String("iban")),
		payment.WithSWIFT(c.String("swift")),
		payment.WithCurrency(c.String("currency")),
		payment.WithVariableSymbol(c.String("vs")),
		payment.WithSpecificSymbol(c.String("ss")),
		payment.WithConstantSymbol(c.String("cs")),
		payment.WithNote(c.String("note")),
		payment.WithRecipient(c.String("recipient")),
	}

	if s := c.String("amount"); s != "" {
		amount, err := payment.ParseAmount(s)
		if err != nil {
			return payment.Instruction{}, err
		}
		opts = append(opts, payment.WithAmountCents(amount.Cents()))
	}

	if s := c.String("due"); s != "" {
		due, err := time.Parse(dueLayout, s)
		if err != nil {
			return payment.Instruction{}, fmt.Errorf("invalid due date %q, expected YYYY-MM-DD: %w", s, err)
		}
		opts = append(opts, payment.WithDueDate(due))
	}

	return payment.New(opts...), nil
}

func newLogger(c *cli.Context) *slog.Logger {
	return logger.New(
		logger.WithTextFormatter(),
		logger.WithLevel(logger.ParseLevel(c.String("log-level"))),
		logger.WithOutput(c.App.ErrWriter),
	)
}

func newGenerator(c *cli.Context, log *slog.Logger, opts ...paybysquare.Option) (*paybysquare.Generator, error) {
	compressor, err := lzma.NewFromConfig(lzma.Config{
		Backend: c.String("compressor"),
		XZPath:  c.String("xz-path"),
		Timeout: lzma.DefaultTimeout,
	}, lzma.WithLogger(log))
	if err != nil {
		return nil, err
	}
	return paybysquare.New(append([]paybysquare.Option{
		paybysquare.WithCompressor(compressor),
		paybysquare.WithLogger(log),
	}, opts...)...)
}
