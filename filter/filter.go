// Package filter collects the stream compressors the core dispatches to
// through the [pdf.Compressor] interface.
package filter

import (
	"bytes"
	"compress/zlib"

	"go.inkforge.dev/pdf"
)

// Flate compresses stream data with zlib, written to /Filter as
// "FlateDecode". Level follows the compress/flate constants; zero selects
// zlib's default.
type Flate struct {
	Level int
}

func (Flate) Name() pdf.Name { return "FlateDecode" }

func (f Flate) Compress(data []byte) ([]byte, error) {
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, &pdf.CompressionError{Filter: "FlateDecode", Err: err}
	}
	if _, err := zw.Write(data); err != nil {
		return nil, &pdf.CompressionError{Filter: "FlateDecode", Err: err}
	}
	if err := zw.Close(); err != nil {
		return nil, &pdf.CompressionError{Filter: "FlateDecode", Err: err}
	}
	return buf.Bytes(), nil
}

// ASCIIHex encodes data as two hex digits per byte, terminated with ">",
// wrapping lines at LineWidth columns (64 if zero). It exists mainly for
// producing content that survives being pasted into text-only channels;
// Flate is the better choice whenever binary-safe output is fine.
type ASCIIHex struct {
	LineWidth int
}

func (ASCIIHex) Name() pdf.Name { return "ASCIIHexDecode" }

const hexDigits = "0123456789abcdef"

func (f ASCIIHex) Compress(data []byte) ([]byte, error) {
	width := f.LineWidth
	if width <= 0 {
		width = 64
	}

	var out bytes.Buffer
	col := 0
	for _, b := range data {
		if col+2 > width {
			out.WriteByte('\n')
			col = 0
		}
		out.WriteByte(hexDigits[b>>4])
		out.WriteByte(hexDigits[b&0xf])
		col += 2
	}
	out.WriteByte('>')
	return out.Bytes(), nil
}

// RunLength implements the PDF RunLengthDecode algorithm: runs of 2-128
// identical bytes are replaced by a (257-n, byte) pair, runs of up to 128
// non-repeating bytes are stored as (n-1, literal...), and the stream ends
// with the sentinel byte 128. It helps on simple, highly repetitive image
// or mask data where Flate's window setup cost isn't worth paying.
type RunLength struct{}

func (RunLength) Name() pdf.Name { return "RunLengthDecode" }

func (RunLength) Compress(data []byte) ([]byte, error) {
	var out bytes.Buffer
	i, n := 0, len(data)
	for i < n {
		j := i + 1
		for j < n && j-i < 128 && data[j] == data[i] {
			j++
		}
		if j-i >= 2 {
			out.WriteByte(byte(257 - (j - i)))
			out.WriteByte(data[i])
			i = j
			continue
		}

		k := i
		for k < n && k-i < 128 {
			if k+1 < n && data[k] == data[k+1] {
				break
			}
			k++
		}
		out.WriteByte(byte(k - i - 1))
		out.Write(data[i:k])
		i = k
	}
	out.WriteByte(128)
	return out.Bytes(), nil
}
