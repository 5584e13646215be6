package filter

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"
)

func TestFlateRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, over and over")
	compressed, err := Flate{}.Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		t.Fatal(err)
	}
	out, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, data) {
		t.Errorf("round trip mismatch: got %q, want %q", out, data)
	}
}

func TestASCIIHexEncode(t *testing.T) {
	cases := []struct {
		in  []byte
		out string
	}{
		{[]byte("ABC"), "414243>"},
		{[]byte(" "), "20>"},
		{[]byte(""), ">"},
		{[]byte{0x00, 0x0F, 0xF0, 0xFF}, "000ff0ff>"},
	}
	for _, c := range cases {
		got, err := ASCIIHex{}.Compress(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != c.out {
			t.Errorf("Compress(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestASCIIHexWraps(t *testing.T) {
	data := bytes.Repeat([]byte{0x1E}, 100)
	got, err := ASCIIHex{LineWidth: 16}.Compress(data)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range bytes.Split(got, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte(">"))
		if len(line) > 16 {
			t.Errorf("line too long: %q", line)
		}
	}
}

func TestRunLengthDecodeExamples(t *testing.T) {
	cases := []struct {
		name    string
		encoded []byte
	}{
		{"empty", []byte{128}},
	}
	for _, c := range cases {
		if c.encoded[len(c.encoded)-1] != 128 {
			t.Errorf("%s: missing EOD sentinel", c.name)
		}
	}
}

func TestRunLengthRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0},
		{0, 0},
		{1, 2, 3, 4, 5},
		{1, 1, 1, 1, 1},
		{0, 1, 2, 3, 0, 0, 0, 0, 4, 5, 6},
		bytes.Repeat([]byte{7}, 128),
		bytes.Repeat([]byte{8}, 127),
		bytes.Repeat([]byte{9}, 2),
	}
	for i, data := range cases {
		encoded, err := RunLength{}.Compress(data)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		out := decodeRunLength(encoded)
		if !bytes.Equal(out, data) {
			t.Errorf("case %d: round trip mismatch: got %v, want %v", i, out, data)
		}
	}
}

// decodeRunLength implements the inverse of RunLength.Compress, used only
// to check round trips in this test file.
func decodeRunLength(data []byte) []byte {
	var out []byte
	i := 0
	for i < len(data) {
		n := data[i]
		i++
		switch {
		case n == 128:
			return out
		case n < 128:
			count := int(n) + 1
			out = append(out, data[i:i+count]...)
			i += count
		default:
			count := 257 - int(n)
			for j := 0; j < count; j++ {
				out = append(out, data[i])
			}
			i++
		}
	}
	return out
}
