/*
Package carray renders packed glyph data as a C array declaration
suitable for direct inclusion in firmware source:

	const uint8_t glyph[] = {
	    0x00, 0x7E, 0x42, 0x42, 0x42, 0x42, 0x42, 0x7E, 0x00, 0x00, 0x00, 0x00,
	    0x00
	};

Bytes are written as two-digit uppercase hex literals, twelve per line
unless configured otherwise, with a trailing comma on every line except
the last.
*/
package carray

import (
	"fmt"
	"io"
	"strings"
)

// DefaultBytesPerLine is the number of byte literals per output line.
const DefaultBytesPerLine = 12

const indent = "    "

type encoder struct {
	w io.Writer
}

func (e *encoder) encode(data []byte, name string, bytesPerLine int) error {
	if _, err := fmt.Fprintf(e.w, "const uint8_t %s[] = {\n", name); err != nil {
		return err
	}

	hex := make([]string, 0, bytesPerLine)
	for i := 0; i < len(data); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(data) {
			end = len(data)
		}

		hex = hex[:0]
		for _, b := range data[i:end] {
			hex = append(hex, fmt.Sprintf("0x%02X", b))
		}

		sep := ","
		if end == len(data) {
			sep = ""
		}

		if _, err := fmt.Fprintf(e.w, "%s%s%s\n", indent, strings.Join(hex, ", "), sep); err != nil {
			return err
		}
	}

	_, err := io.WriteString(e.w, "};\n")
	return err
}

// Encode writes data to w as a C array declaration named name. A
// bytesPerLine of zero or less selects DefaultBytesPerLine.
func Encode(w io.Writer, data []byte, name string, bytesPerLine int) error {
	if bytesPerLine <= 0 {
		bytesPerLine = DefaultBytesPerLine
	}

	e := encoder{w: w}

	return e.encode(data, name, bytesPerLine)
}
