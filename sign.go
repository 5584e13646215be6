package pdf

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
)

// writeSigned implements the digital-signature write path: a signature
// dictionary is bound with a hex /Contents placeholder and a placeholder
// /ByteRange, the document is rendered once to discover where in the
// output the placeholder landed, /ByteRange is patched to the real
// offsets, the attached Signer is handed every byte of that render
// except the /Contents hex digits themselves, and its answer is
// hex-encoded into the already-correctly-sized buffer. No third render
// is needed: patching the placeholder's bytes in place works because
// writeSigned reserves a hex string whose encoded length never changes
// between the two things it can hold (zeros, then the real signature).
func (wr *Writer) writeSigned(out io.Writer, encRef Reference) error {
	digits := wr.opts.Signer.PlaceholderSize()
	if digits <= 0 {
		digits = defaultSignaturePlaceholderBytes
	}
	if digits%2 != 0 {
		digits++
	}
	placeholder := NewHexString(make([]byte, digits/2))

	sigRef := wr.tab.Alloc()
	sigDict := Dict{
		{"Type", Name("Sig")},
		{"Filter", Name("Adobe.PPKLite")},
		{"SubFilter", Name("adbe.pkcs7.detached")},
		{"ByteRange", Array{Integer(0), fixedWidthInteger{0, 10}, fixedWidthInteger{0, 10}, fixedWidthInteger{0, 10}}},
		{"Contents", placeholder},
	}
	if err := wr.tab.Bind(sigRef, sigDict); err != nil {
		return err
	}

	contentsPrefix, err := dictValueOffset(sigDict, "Contents")
	if err != nil {
		return &SignatureError{Err: err}
	}

	wr.tab.freeze()
	order := wr.tab.numberOrder()

	objStarts := make(map[uint32]int64)
	var scratch bytes.Buffer
	total, err := wr.writeBody(&scratch, order, encRef, nil, objStarts)
	if err != nil {
		return err
	}

	// +1 skips the '<' that opens the hex string itself.
	contentsStart := objStarts[sigRef.Number] + contentsPrefix + 1
	contentsEnd := contentsStart + int64(digits)

	byteRange := Array{
		Integer(0),
		fixedWidthInteger{contentsStart, 10},
		fixedWidthInteger{contentsEnd, 10},
		fixedWidthInteger{total - contentsEnd, 10},
	}
	overrides := map[uint32]Object{
		sigRef.Number: Dict{
			{"Type", Name("Sig")},
			{"Filter", Name("Adobe.PPKLite")},
			{"SubFilter", Name("adbe.pkcs7.detached")},
			{"ByteRange", byteRange},
			{"Contents", placeholder},
		},
	}

	scratch.Reset()
	if _, err := wr.writeBody(&scratch, order, encRef, overrides, nil); err != nil {
		return err
	}
	buf := scratch.Bytes()

	digest := make([]byte, 0, len(buf)-digits)
	digest = append(digest, buf[:contentsStart]...)
	digest = append(digest, buf[contentsEnd:]...)

	sig, err := wr.opts.Signer.Sign(digest)
	if err != nil {
		return &SignatureError{Err: err}
	}
	encoded := hex.EncodeToString(sig)
	if len(encoded) > digits {
		return &SignatureError{Err: fmt.Errorf("signature (%d hex digits) exceeds the reserved placeholder (%d)", len(encoded), digits)}
	}
	copy(buf[contentsStart:], encoded)
	for i := contentsStart + int64(len(encoded)); i < contentsEnd; i++ {
		buf[i] = '0'
	}

	_, err = out.Write(buf)
	return err
}

// dictValueOffset returns the number of bytes Dict.Encode writes before
// the value bound to key, measured from the start of the "<<" that opens
// d itself. It mirrors Dict.Encode's layout field by field instead of
// scanning the rendered output, so it keeps working if a sibling entry's
// value contains bytes that happen to look like the target key.
func dictValueOffset(d Dict, key Name) (int64, error) {
	var buf bytes.Buffer
	if _, err := buf.WriteString("<<"); err != nil {
		return 0, err
	}
	for i, e := range d {
		if i > 0 {
			if err := buf.WriteByte(' '); err != nil {
				return 0, err
			}
		}
		if err := e.Key.Encode(&buf); err != nil {
			return 0, err
		}
		if err := buf.WriteByte(' '); err != nil {
			return 0, err
		}
		if e.Key == key {
			return int64(buf.Len()), nil
		}
		if err := encodeMaybeNil(&buf, e.Value); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("key %q not found in dict", key)
}
