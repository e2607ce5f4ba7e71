package fontgen

import (
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func writeWhitePNG(t *testing.T, width, height int) string {
	t.Helper()

	m := image.NewGray(image.Rect(0, 0, width, height))
	for i := range m.Pix {
		m.Pix[i] = 0xff
	}

	path := filepath.Join(t.TempDir(), "input.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, m))

	return path
}

func TestConvertImage(t *testing.T) {
	g := New(Config{
		Width:     8,
		Height:    1,
		Threshold: 128,
		VarName:   "glyph",
	}, testLogger())

	src, err := g.ConvertImage(writeWhitePNG(t, 8, 1))
	require.NoError(t, err)

	assert.Equal(t, "const uint8_t glyph[] = {\n    0xFF\n};\n", string(src))
}

func TestConvertImageTallGlyph(t *testing.T) {
	g := New(Config{
		Width:     8,
		Height:    8,
		Threshold: 128,
		VarName:   "glyph",
	}, testLogger())

	// 8x1 source scaled up to 8x8, one full byte per row
	src, err := g.ConvertImage(writeWhitePNG(t, 8, 1))
	require.NoError(t, err)

	want := "const uint8_t glyph[] = {\n    0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF\n};\n"
	assert.Equal(t, want, string(src))
}

func TestConvertImageLoadFailure(t *testing.T) {
	g := New(Config{
		Width:     8,
		Height:    8,
		Threshold: 128,
		VarName:   "glyph",
	}, testLogger())

	src, err := g.ConvertImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
	assert.Nil(t, src)
}

func TestConvertTextMissingFont(t *testing.T) {
	g := New(Config{
		Width:     16,
		Height:    16,
		Threshold: 128,
		VarName:   "glyph",
	}, testLogger())

	src, err := g.ConvertText("A", "", 16)
	assert.Error(t, err)
	assert.Nil(t, src)
}

func TestConvertImageAutoThreshold(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 8, 1))
	for x := 4; x < 8; x++ {
		m.Pix[x] = 0xc0
	}

	path := filepath.Join(t.TempDir(), "input.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))

	g := New(Config{
		Width:         8,
		Height:        1,
		AutoThreshold: true,
		VarName:       "glyph",
	}, testLogger())

	src, err := g.ConvertImage(path)
	require.NoError(t, err)

	// The computed cutoff falls between the two levels, so only the
	// right half packs as set bits
	assert.Equal(t, "const uint8_t glyph[] = {\n    0x0F\n};\n", string(src))
}
