package bitmap

import (
	"errors"
	"image"
	"image/color"
)

var (
	errNotEnough = errors.New("bitmap: not enough glyph data")
	errTooMuch   = errors.New("bitmap: too much glyph data")
)

// Decode unpacks previously packed glyph data back into a grayscale
// image; set bits become full intensity, clear bits zero. The data
// length must be exactly ceil(width/8) * height bytes.
func Decode(data []byte, width, height int) (*image.Gray, error) {
	stride := rowStride(width)

	switch {
	case len(data) < stride*height:
		return nil, errNotEnough
	case len(data) > stride*height:
		return nil, errTooMuch
	}

	b := &Bitmap{data, width, height, stride}

	m := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if b.Bit(x, y) != 0 {
				m.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	return m, nil
}
