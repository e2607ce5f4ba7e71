/*
Package glyph produces the grayscale canvas that gets packed into LCD
glyph data, either from an image file scaled to the glyph dimensions or
from text rendered with a TrueType font.
*/
package glyph

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// ErrMissingFont is returned by FromText when no font file was given.
var ErrMissingFont = errors.New("glyph: font file required for text rendering")

const dpi = 72

// FromImage loads the image at path, converts it to grayscale and
// scales it to exactly width by height pixels using nearest-neighbor
// resampling.
func FromImage(path string, width, height int) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("glyph: decode image: %w", err)
	}

	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)

	scaled := image.NewGray(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), gray, gray.Bounds(), draw.Src, nil)

	return scaled, nil
}

// FromText renders text in the given TrueType font at size points onto
// a blank width by height canvas, white on black. The baseline sits one
// em below the top-left corner; anything the rasterizer places outside
// the canvas is clipped.
func FromText(text, fontPath string, size float64, width, height int) (*image.Gray, error) {
	if fontPath == "" {
		return nil, ErrMissingFont
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("glyph: open font: %w", err)
	}

	fnt, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}

	dst := image.NewGray(image.Rect(0, 0, width, height))

	c := freetype.NewContext()
	c.SetDPI(dpi)
	c.SetFont(fnt)
	c.SetFontSize(size)
	c.SetClip(dst.Bounds())
	c.SetDst(dst)
	c.SetSrc(image.White)
	c.SetHinting(font.HintingNone)

	if _, err := c.DrawString(text, freetype.Pt(0, int(c.PointToFixed(size)>>6))); err != nil {
		return nil, fmt.Errorf("glyph: draw text: %w", err)
	}

	return dst, nil
}

// Binarize snaps every pixel to full intensity or zero by comparing
// against threshold.
func Binarize(m *image.Gray, threshold uint8) {
	for i, v := range m.Pix {
		if v > threshold {
			m.Pix[i] = 0xff
		} else {
			m.Pix[i] = 0x00
		}
	}
}
