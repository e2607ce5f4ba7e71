package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/lcdtools/fontgen"
	"github.com/lcdtools/fontgen/bitmap"
	"github.com/lcdtools/fontgen/carray"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
)

const defaultFontSize = 16

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "fontgen"
	app.Usage = "LCD glyph data generator"
	app.ArgsUsage = "INPUT"
	app.Description = "Converts an image file, or text rendered with a TrueType font when\n--is-text is set, into a packed monochrome C array for LCD firmware."
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "output file for the generated source",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "width",
			Usage:    "glyph width in pixels",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "height",
			Usage:    "glyph height in pixels",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "var-name",
			Usage:    "identifier for the generated declaration",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "is-text",
			Usage: "treat INPUT as literal text instead of an image path",
		},
		&cli.StringFlag{
			Name:  "font",
			Usage: "path to a TrueType font file (required with --is-text)",
		},
		&cli.IntFlag{
			Name:  "font-size",
			Value: defaultFontSize,
			Usage: "point size for text rendering",
		},
		&cli.IntFlag{
			Name:  "threshold",
			Value: bitmap.DefaultThreshold,
			Usage: "binarization cutoff, 0-255",
		},
		&cli.BoolFlag{
			Name:  "auto-threshold",
			Usage: "derive the cutoff from the input instead of --threshold",
		},
		&cli.IntFlag{
			Name:  "bytes-per-line",
			Value: carray.DefaultBytesPerLine,
			Usage: "byte literals per output line",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}

		logger := log.New(io.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		g := fontgen.New(fontgen.Config{
			Width:         c.Int("width"),
			Height:        c.Int("height"),
			Threshold:     uint8(c.Int("threshold")),
			AutoThreshold: c.Bool("auto-threshold"),
			VarName:       c.String("var-name"),
			BytesPerLine:  c.Int("bytes-per-line"),
		}, logger)

		var (
			src []byte
			err error
		)
		if c.Bool("is-text") {
			src, err = g.ConvertText(c.Args().First(), c.String("font"), float64(c.Int("font-size")))
		} else {
			src, err = g.ConvertImage(c.Args().First())
		}
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		output := c.String("output")
		if err := os.WriteFile(output, src, 0644); err != nil {
			return cli.NewExitError(err, 1)
		}

		fmt.Printf("glyph data written to %s\n", output)

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
