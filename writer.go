package pdf

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
)

// WriterOptions configures a [Writer]. The zero value writes an
// unencrypted, unsigned, non-linearized file at the Table's version.
type WriterOptions struct {
	// Version overrides the version recorded in the Table the Writer was
	// built from. Zero means "use the table's version".
	Version Version

	// IDSeed, when non-nil, is mixed into the document's first /ID
	// entry together with the serialized body, so that callers can make
	// repeated saves of logically-identical content produce the same
	// identifier. When nil, the body bytes alone are hashed.
	IDSeed []byte

	// UserPassword and OwnerPassword are normalized with
	// [NormalizePassword] and handed to Encryptor, if one is attached;
	// the Writer itself never derives encryption keys.
	UserPassword  string
	OwnerPassword string

	// Encryptor, if set, encrypts every literal/hex string and stream
	// payload except the encryption dictionary itself and /ID.
	Encryptor Encryptor

	// Signer, if set, reserves a /Contents placeholder in the last
	// object written by [Writer.Write] and fills it in after the byte
	// range is known.
	Signer Signer

	// Linearized requests the two-pass "fast web view" layout described
	// for the serializer; FirstPageObjects lists the object numbers that
	// make up the first page (its Page dict, Contents stream(s), and
	// the objects reachable only from it) and must be supplied when
	// Linearized is true.
	Linearized       bool
	FirstPageObjects []uint32
}

// Writer is the byte-exact serializer for a [Table]. Build a Table, bind
// every object (including the document catalog and an optional info
// dict), then call Write exactly once.
type Writer struct {
	tab  *Table
	root Reference
	info Reference
	opts WriterOptions
}

// NewWriter returns a Writer that will serialize tab. root must be the
// reference of a bound Catalog dict; info may be the zero Reference if
// the document carries no /Info dict.
func NewWriter(tab *Table, root, info Reference, opts WriterOptions) *Writer {
	return &Writer{tab: tab, root: root, info: info, opts: opts}
}

// Write freezes the table and serializes it to out, following the
// strict step order: freeze, header, body, xref, trailer.
func (wr *Writer) Write(out io.Writer) error {
	if err := validateReferences(wr.tab, wr.root, wr.info); err != nil {
		return err
	}

	var encRef Reference
	if wr.opts.Encryptor != nil {
		userPW, err := NormalizePassword(wr.opts.UserPassword)
		if err != nil {
			return &EncryptionError{Err: err}
		}
		ownerPW, err := NormalizePassword(wr.opts.OwnerPassword)
		if err != nil {
			return &EncryptionError{Err: err}
		}
		d, err := wr.opts.Encryptor.BuildEncryptDict(userPW, ownerPW)
		if err != nil {
			return &EncryptionError{Err: err}
		}
		encRef, err = wr.tab.Put(d)
		if err != nil {
			return err
		}
	}

	// writeSigned and writeLinearized each allocate an object of their
	// own (the signature placeholder, the linearization dictionary), so
	// they must run before the table is frozen; each freezes the table
	// once that allocation is done.
	if wr.opts.Signer != nil {
		return wr.writeSigned(out, encRef)
	}
	if wr.opts.Linearized {
		return wr.writeLinearized(out, encRef)
	}

	wr.tab.freeze()

	_, err := wr.writeBody(out, wr.tab.numberOrder(), encRef, nil, nil)
	return err
}

// writeBody performs steps 2-5 for the given object traversal order.
// encRef is the zero Reference unless an Encryptor is attached. When
// objStarts is non-nil, it is populated with the byte offset, for every
// object written, of the first byte of that object's value (right after
// its "N 0 obj\n" header) — used by writeSigned to locate the signature
// dictionary's /Contents placeholder without having to scan the output.
func (wr *Writer) writeBody(out io.Writer, order []uint32, encRef Reference, overrides map[uint32]Object, objStarts map[uint32]int64) (int64, error) {
	cw := &countingWriter{w: out, hash: sha256.New()}

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

	maxNum := wr.tab.maxNumber()
	entries := make([]xrefEntry, maxNum+1)

	for _, num := range order {
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

		entries[num] = xrefEntry{offset: cw.n, inUse: true}
		if _, err := fmt.Fprintf(cw, "%d 0 obj\n", num); err != nil {
			return 0, err
		}
		if objStarts != nil {
			objStarts[num] = cw.n
		}
		if err := val.Encode(cw); err != nil {
			return 0, err
		}
		if _, err := io.WriteString(cw, "\nendobj\n"); err != nil {
			return 0, err
		}
	}

	xrefOffset := cw.n
	if err := writeXRefTable(cw, entries); err != nil {
		return 0, err
	}

	id := wr.computeID(cw.hash.Sum(nil))
	trailer := Dict{
		{"Size", Integer(len(entries))},
		{"Root", wr.root},
		{"ID", Array{id[0], id[1]}},
	}
	if !wr.info.IsZero() {
		trailer.Set("Info", wr.info)
	}
	if !encRef.IsZero() {
		trailer.Set("Encrypt", encRef)
	}

	if _, err := io.WriteString(cw, "trailer\n"); err != nil {
		return 0, err
	}
	if err := trailer.Encode(cw); err != nil {
		return 0, err
	}
	if _, err := fmt.Fprintf(cw, "\nstartxref\n%d\n%%%%EOF\n", xrefOffset); err != nil {
		return 0, err
	}

	return cw.n, nil
}

// prepareForEncryption returns val with every String and Stream payload
// belonging to ref replaced by its encrypted form, or val unchanged if
// no Encryptor is attached.
func (wr *Writer) prepareForEncryption(ref Reference, val Object) Object {
	enc := wr.opts.Encryptor
	if enc == nil {
		return val
	}
	return encryptObject(enc, ref, val)
}

func encryptObject(enc Encryptor, ref Reference, val Object) Object {
	switch v := val.(type) {
	case String:
		data, err := enc.EncryptString(ref, v.Data)
		if err != nil {
			return v
		}
		return String{Data: data, Kind: v.Kind}
	case Array:
		out := make(Array, len(v))
		for i, item := range v {
			out[i] = encryptObject(enc, ref, item)
		}
		return out
	case Dict:
		out := make(Dict, len(v))
		for i, e := range v {
			out[i] = DictEntry{Key: e.Key, Value: encryptObject(enc, ref, e.Value)}
		}
		return out
	case *Stream:
		data, err := enc.EncryptStream(ref, v.Data)
		if err != nil {
			return v
		}
		return &Stream{Dict: encryptObject(enc, ref, v.Dict).(Dict), Data: data}
	default:
		return val
	}
}

// computeID returns the pair of 16-byte file identifiers: the first is a
// hash of the seed plus the serialized body; the second equals the first
// on an initial save, as required for a file with no previous /ID.
func (wr *Writer) computeID(bodyHash []byte) [2]String {
	h := sha256.New()
	if wr.opts.IDSeed != nil {
		h.Write(wr.opts.IDSeed)
	}
	h.Write(bodyHash)
	sum := h.Sum(nil)[:16]
	id := String{Data: sum, Kind: Hex}
	return [2]String{id, id}
}

// validateReferences walks every bound object looking for a Reference
// that points at an object number which was never bound, per the
// DanglingRef failure mode.
func validateReferences(tab *Table, root, info Reference) error {
	if !root.IsZero() {
		if _, ok := tab.Resolve(root); !ok {
			return ErrDanglingReference
		}
	}
	if !info.IsZero() {
		if _, ok := tab.Resolve(info); !ok {
			return ErrDanglingReference
		}
	}
	for _, num := range tab.numberOrder() {
		val, _ := tab.Resolve(Reference{Number: num})
		if err := checkDangling(tab, val); err != nil {
			return err
		}
	}
	return nil
}

func checkDangling(tab *Table, val Object) error {
	switch v := val.(type) {
	case Reference:
		if _, ok := tab.Resolve(v); !ok {
			return ErrDanglingReference
		}
	case Array:
		for _, item := range v {
			if err := checkDangling(tab, item); err != nil {
				return err
			}
		}
	case Dict:
		for _, e := range v {
			if err := checkDangling(tab, e.Value); err != nil {
				return err
			}
		}
	case *Stream:
		return checkDangling(tab, v.Dict)
	}
	return nil
}

// countingWriter tracks the total byte offset while also feeding every
// written byte into a hash, used by computeID so that the identifier
// depends on the exact serialized content.
type countingWriter struct {
	w    io.Writer
	n    int64
	hash hash.Hash
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.hash.Write(p[:n])
	return n, err
}
