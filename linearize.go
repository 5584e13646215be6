package pdf

import (
	"bytes"
	"io"
	"strconv"
)

// writeLinearized implements the "fast web view" two-pass layout: the
// objects that make up the first page are moved to the front of the
// file, right after a linearization parameter dictionary bound as a new
// object. That dictionary must report the total length of the finished
// file and the byte offset where the first page's objects end, neither
// of which is known until the file has been rendered once. The first
// render uses fixed-width placeholder numbers inside the parameter
// dictionary; because the real numbers are substituted at the same
// width, the second render has identical length and offsets to the
// first, so the placeholders can simply be swapped for the true values.
//
// Hint streams (ISO 32000-1 Annex F.3) are not generated: nothing in
// this module's object graph needs the page-offset hints they encode
// for incremental rendering, and omitting the hint stream still
// produces a file that opens correctly, only without the fast-view
// optimization a reader can exploit.
func (wr *Writer) writeLinearized(out io.Writer, encRef Reference) error {
	linRef, err := wr.tab.Put(Dict{})
	if err != nil {
		return err
	}
	wr.tab.freeze()

	order := wr.linearizedOrder(linRef)

	placeholder := linearizationDict(0, 0, 0)
	overrides := map[uint32]Object{linRef.Number: placeholder}

	var scratch bytes.Buffer
	total, err := wr.writeBody(&scratch, order, encRef, overrides, nil)
	if err != nil {
		return err
	}

	firstPageEnd, err := firstPageEndOffset(wr, order, encRef, overrides)
	if err != nil {
		return err
	}

	firstObj := uint32(0)
	if len(wr.opts.FirstPageObjects) > 0 {
		firstObj = wr.opts.FirstPageObjects[0]
	}

	final := linearizationDict(total, firstPageEnd, firstObj)
	overrides[linRef.Number] = final

	_, err = wr.writeBody(out, order, encRef, overrides, nil)
	return err
}

// linearizedOrder returns the object traversal order for the linearized
// layout: the parameter dictionary first, then the caller-supplied
// first-page objects in ascending order, then every remaining bound
// object in ascending order.
func (wr *Writer) linearizedOrder(linRef Reference) []uint32 {
	first := make(map[uint32]bool, len(wr.opts.FirstPageObjects)+1)
	first[linRef.Number] = true
	order := []uint32{linRef.Number}

	firstPage := append([]uint32(nil), wr.opts.FirstPageObjects...)
	for _, num := range firstPage {
		if !first[num] {
			first[num] = true
			order = append(order, num)
		}
	}

	for _, num := range wr.tab.numberOrder() {
		if !first[num] {
			order = append(order, num)
		}
	}
	return order
}

// linearizationDict builds the /Linearized parameter dictionary. The
// placeholder pass and the final pass must render L, E and T with the
// same number of bytes for the scheme above to hold, so these fields are
// written as zero-padded fixed-width integers. Reserving 10 digits
// (matching the xref offset width) keeps this true for any realistic
// file size.
func linearizationDict(totalLength, firstPageEnd int64, firstObject uint32) Dict {
	return Dict{
		{"Linearized", Real(1)},
		{"L", fixedWidthInteger{totalLength, 10}},
		{"E", fixedWidthInteger{firstPageEnd, 10}},
		{"O", Integer(firstObject)},
		{"N", Integer(0)},
		{"T", fixedWidthInteger{0, 10}},
	}
}

// fixedWidthInteger wraps an Integer so it always encodes at the given
// number of digits, left-padded with zeros; this gives the linearization
// parameter dictionary a constant byte length across both writeBody
// passes regardless of the actual value substituted in.
type fixedWidthInteger struct {
	value int64
	width int
}

func (n fixedWidthInteger) Encode(w io.Writer) error {
	digits := []byte(strconv.FormatInt(n.value, 10))
	if len(digits) < n.width {
		pad := make([]byte, n.width-len(digits))
		for i := range pad {
			pad[i] = '0'
		}
		digits = append(pad, digits...)
	}
	_, err := w.Write(digits)
	return err
}

// firstPageEndOffset measures, via a throwaway render, the byte offset
// at which the first page's object block ends (the position right
// before the first object not listed in FirstPageObjects).
func firstPageEndOffset(wr *Writer, order []uint32, encRef Reference, overrides map[uint32]Object) (int64, error) {
	firstCount := len(wr.opts.FirstPageObjects) + 1 // +1 for the linearization dict
	if firstCount > len(order) {
		firstCount = len(order)
	}

	var scratch bytes.Buffer
	cw := &countingWriter{w: &scratch, hash: noopHash{}}
	ver := wr.opts.Version
	if ver == 0 {
		ver = wr.tab.Version()
	}
	if _, err := io.WriteString(cw, ver.header()+"\n"); err != nil {
		return 0, err
	}
	if _, err := cw.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'}); err != nil {
		return 0, err
	}

	for _, num := range order[:firstCount] {
		ref := Reference{Number: num}
		var val Object
		if ov, ok := overrides[num]; ok {
			val = ov
		} else {
			val, _ = wr.tab.Resolve(ref)
			if ref != encRef {
				val = wr.prepareForEncryption(ref, val)
			}
		}
		if _, err := io.WriteString(cw, objHeader(num)); err != nil {
			return 0, err
		}
		if err := val.Encode(cw); err != nil {
			return 0, err
		}
		if _, err := io.WriteString(cw, "\nendobj\n"); err != nil {
			return 0, err
		}
	}
	return cw.n, nil
}

func objHeader(num uint32) string {
	return strconv.FormatInt(int64(num), 10) + " 0 obj\n"
}

// noopHash discards writes; used when measuring byte offsets where the
// running content hash is not needed.
type noopHash struct{}

func (noopHash) Write(p []byte) (int, error) { return len(p), nil }
func (noopHash) Sum(b []byte) []byte         { return b }
func (noopHash) Reset()                      {}
func (noopHash) Size() int                   { return 0 }
func (noopHash) BlockSize() int              { return 0 }
