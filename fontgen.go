/*
Package fontgen converts images or rendered text into packed monochrome
glyph data for small LCD controllers such as the IST3931, emitted as a
C array declaration ready for inclusion in firmware source.
*/
package fontgen

import (
	"bytes"
	"image"
	"log"

	"github.com/lcdtools/fontgen/bitmap"
	"github.com/lcdtools/fontgen/carray"
	"github.com/lcdtools/fontgen/glyph"
)

// Config holds the conversion parameters shared by both input modes.
type Config struct {
	// Width and Height are the glyph dimensions in pixels.
	Width  int
	Height int

	// Threshold is the binarization cutoff; intensities strictly
	// greater become set pixels.
	Threshold uint8

	// AutoThreshold derives the cutoff from the glyph itself instead
	// of Threshold.
	AutoThreshold bool

	// VarName is the identifier used in the generated declaration.
	VarName string

	// BytesPerLine controls output wrapping; zero selects the
	// carray default.
	BytesPerLine int
}

type Generator struct {
	config Config
	logger *log.Logger
}

func New(config Config, logger *log.Logger) *Generator {
	return &Generator{
		config: config,
		logger: logger,
	}
}

// ConvertImage converts the image at path into the generated source
// text. Nothing is written anywhere; the caller decides what to do
// with the result.
func (g *Generator) ConvertImage(path string) ([]byte, error) {
	m, err := glyph.FromImage(path, g.config.Width, g.config.Height)
	if err != nil {
		return nil, err
	}

	return g.generate(m)
}

// ConvertText renders text with the TrueType font at fontPath at size
// points and converts the result into the generated source text.
func (g *Generator) ConvertText(text, fontPath string, size float64) ([]byte, error) {
	m, err := glyph.FromText(text, fontPath, size, g.config.Width, g.config.Height)
	if err != nil {
		return nil, err
	}

	return g.generate(m)
}

func (g *Generator) generate(m *image.Gray) ([]byte, error) {
	threshold := g.config.Threshold

	if g.config.AutoThreshold {
		if t, ok := glyph.AutoThreshold(m); ok {
			threshold = t
			g.logger.Printf("using computed threshold %d", threshold)
		} else {
			g.logger.Printf("flat image, keeping threshold %d", threshold)
		}
	}

	glyph.Binarize(m, threshold)

	packed := bitmap.Pack(m, threshold)
	g.logger.Printf("packed %dx%d glyph into %d bytes", packed.Width(), packed.Height(), len(packed.Data()))

	var buf bytes.Buffer
	if err := carray.Encode(&buf, packed.Data(), g.config.VarName, g.config.BytesPerLine); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
