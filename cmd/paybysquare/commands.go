package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/paybysquare/app/api"
	"github.com/dmitrymomot/paybysquare/core/config"
	"github.com/dmitrymomot/paybysquare/core/render"
	"github.com/dmitrymomot/paybysquare/pkg/qrcode"
)

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "print the PAY by square text",
		Flags: flags(paymentFlags(), compressorFlags(), logFlags()),
		Action: func(c *cli.Context) error {
			in, err := instruction(c)
			if err != nil {
				return err
			}
			gen, err := newGenerator(c, newLogger(c))
			if err != nil {
				return err
			}
			text, err := gen.Encode(c.Context, in)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.App.Writer, text)
			return err
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "write the QR image as PNG",
		Flags: flags(paymentFlags(), compressorFlags(), logFlags(), []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "-", Usage: "output file, - for stdout"},
			&cli.IntFlag{Name: "size", Value: render.DefaultSize, Usage: "QR edge length in px"},
			&cli.StringFlag{Name: "style", Value: render.StyleDefault.String(), Usage: "default, transparent, bordered_card or bordered_card_transparent"},
		}),
		Action: func(c *cli.Context) error {
			style, err := render.ParseStyle(c.String("style"))
			if err != nil {
				return err
			}
			in, err := instruction(c)
			if err != nil {
				return err
			}
			gen, err := newGenerator(c, newLogger(c))
			if err != nil {
				return err
			}

			out := c.String("out")
			if out != "-" {
				if err := gen.SaveToFile(c.Context, in, filepath.Clean(out), c.Int("size"), style); err != nil {
					return err
				}
				_, err = fmt.Fprintln(c.App.Writer, out)
				return err
			}

			if isTerminal(c.App.Writer) {
				text, err := gen.Encode(c.Context, in)
				if err != nil {
					return err
				}
				art, err := qrcode.SmallString(text)
				if err != nil {
					return err
				}
				_, err = io.WriteString(c.App.Writer, art)
				return err
			}

			data, err := gen.PNG(c.Context, in, c.Int("size"), style)
			if err != nil {
				return err
			}
			_, err = c.App.Writer.Write(data)
			return err
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: flags(compressorFlags(), []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address", EnvVars: []string{"SERVER_ADDR"}},
		}),
		Action: func(c *cli.Context) error {
			var cfg api.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if c.IsSet("compressor") {
				cfg.Compressor.Backend = c.String("compressor")
			}
			if c.IsSet("xz-path") {
				cfg.Compressor.XZPath = c.String("xz-path")
			}
			if c.IsSet("addr") {
				cfg.Server.Addr = c.String("addr")
			}

			app, err := api.NewApp(c.Context, cfg)
			if err != nil {
				return err
			}
			return app.Run(c.Context)
		},
	}
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
