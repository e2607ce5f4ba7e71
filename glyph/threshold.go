package glyph

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
)

// AutoThreshold derives a binarization threshold from the glyph itself
// by quantizing it down to a two color palette and taking the midpoint
// of the two gray levels. Reports false when the image has fewer than
// two distinct levels and no sensible threshold exists.
func AutoThreshold(m *image.Gray) (uint8, bool) {
	q := quantize.MedianCutQuantizer{}

	p := q.Quantize(make(color.Palette, 0, 2), m)
	if len(p) < 2 {
		return 0, false
	}

	g0 := color.GrayModel.Convert(p[0]).(color.Gray).Y
	g1 := color.GrayModel.Convert(p[1]).(color.Gray).Y
	if g1 < g0 {
		g0, g1 = g1, g0
	}

	return uint8((int(g0) + int(g1)) / 2), true
}
