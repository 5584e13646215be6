package pdf

import (
	"bytes"
	"encoding/hex"
	"regexp"
	"strconv"
	"testing"
)

// stubSigner returns a fixed signature over whatever digest it is given,
// recording the digest so tests can check /Contents was excluded from it.
type stubSigner struct {
	placeholderDigits int
	sig               []byte
	lastDigest        []byte
}

func (s *stubSigner) PlaceholderSize() int { return s.placeholderDigits }

func (s *stubSigner) Sign(digest []byte) ([]byte, error) {
	s.lastDigest = append([]byte(nil), digest...)
	return s.sig, nil
}

var byteRangePattern = regexp.MustCompile(`/ByteRange \[0 (\d+) (\d+) (\d+)\]`)

func TestWriteSignedProducesValidByteRange(t *testing.T) {
	tab, root := buildSimpleTable(t)
	signer := &stubSigner{placeholderDigits: 64, sig: []byte("deadbeef")}

	var buf bytes.Buffer
	w := NewWriter(tab, root, Reference{}, WriterOptions{Signer: signer})
	if err := w.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	if !bytes.Contains(out, []byte("/Type /Sig")) {
		t.Fatalf("no signature dictionary found in output: %q", out)
	}

	m := byteRangePattern.FindSubmatch(out)
	if m == nil {
		t.Fatalf("no /ByteRange found in output: %q", out)
	}
	start, err := strconv.Atoi(string(m[1]))
	if err != nil {
		t.Fatal(err)
	}
	end, err := strconv.Atoi(string(m[2]))
	if err != nil {
		t.Fatal(err)
	}
	length, err := strconv.Atoi(string(m[3]))
	if err != nil {
		t.Fatal(err)
	}
	if start+length != len(out)-(end-start) {
		t.Errorf("byte range %d/%d/%d doesn't account for the full %d-byte file", start, end, length, len(out))
	}

	contentsHex := out[start:end]
	if _, err := hex.DecodeString(string(contentsHex)); err != nil {
		t.Errorf("contents slice is not plain hex: %q: %v", contentsHex, err)
	}

	want := []byte(hex.EncodeToString(signer.sig))
	if !bytes.Contains(contentsHex, want) {
		t.Errorf("expected hex-encoded signature %q inside contents slice %q", want, contentsHex)
	}

	if len(signer.lastDigest) == 0 {
		t.Fatal("signer was never invoked")
	}
	if bytes.Contains(signer.lastDigest, contentsHex) {
		t.Error("digest handed to Signer must exclude the /Contents placeholder bytes")
	}
}

func TestWriteSignedRejectsOversizeSignature(t *testing.T) {
	tab, root := buildSimpleTable(t)
	signer := &stubSigner{placeholderDigits: 4, sig: []byte("this signature is far too long to fit")}

	var buf bytes.Buffer
	w := NewWriter(tab, root, Reference{}, WriterOptions{Signer: signer})
	err := w.Write(&buf)
	if err == nil {
		t.Fatal("expected an error for an oversize signature")
	}
	if _, ok := err.(*SignatureError); !ok {
		t.Fatalf("expected a *SignatureError, got %T: %v", err, err)
	}
}

func TestDictValueOffsetFindsKey(t *testing.T) {
	d := Dict{
		{"Type", Name("Sig")},
		{"Contents", NewHexString([]byte{0xAB})},
	}
	off, err := dictValueOffset(d, "Contents")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Bytes()[off] != '<' {
		t.Errorf("offset %d does not point at the hex string's opening '<': %q", off, buf.String())
	}
}

func TestDictValueOffsetMissingKey(t *testing.T) {
	d := Dict{{"Type", Name("Sig")}}
	if _, err := dictValueOffset(d, "Contents"); err == nil {
		t.Fatal("expected an error for a missing key")
	}
}
