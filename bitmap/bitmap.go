/*
Package bitmap implements the packed monochrome glyph format used by
IST3931-class LCD controllers.

A glyph of W by H pixels is stored row-major as H * ceil(W/8) bytes.
Within each byte the most significant bit holds the leftmost pixel, so
bit b (0 = MSB) of byte c in row y is pixel x = c*8 + b. Rows narrower
than a whole number of bytes are padded; pad bits are always 0.
*/
package bitmap

const bitsPerByte = 8

// Bitmap is a packed 1 bit per pixel glyph.
type Bitmap struct {
	data   []byte
	width  int
	height int
	stride int
}

func (b *Bitmap) Width() int {
	return b.width
}

func (b *Bitmap) Height() int {
	return b.height
}

// Stride is the number of bytes between vertically adjacent pixels.
func (b *Bitmap) Stride() int {
	return b.stride
}

func (b *Bitmap) Data() []byte {
	return b.data
}

// Bit returns 0 or 1 for the pixel at (x, y).
func (b *Bitmap) Bit(x, y int) byte {
	return b.data[y*b.stride+x/bitsPerByte] >> (bitsPerByte - 1 - x%bitsPerByte) & 1
}

func rowStride(width int) int {
	return (width + bitsPerByte - 1) / bitsPerByte
}
