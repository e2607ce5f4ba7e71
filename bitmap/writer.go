package bitmap

import "image"

// DefaultThreshold is the intensity above which a pixel is considered set.
const DefaultThreshold = 128

// Pack converts a grayscale glyph into its packed form. A bit is set
// if the corresponding pixel intensity is strictly greater than
// threshold; bits beyond the glyph width stay 0.
func Pack(m *image.Gray, threshold uint8) *Bitmap {
	b := m.Bounds()
	width, height, stride := b.Dx(), b.Dy(), rowStride(b.Dx())
	data := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		for c := 0; c < stride; c++ {
			var p byte
			for bit := 0; bit < bitsPerByte; bit++ {
				x := c*bitsPerByte + bit
				if x < width && m.GrayAt(b.Min.X+x, b.Min.Y+y).Y > threshold {
					p |= 1 << (bitsPerByte - 1 - bit)
				}
			}
			data[y*stride+c] = p
		}
	}

	return &Bitmap{data, width, height, stride}
}
