package pdf

import "sort"

// Table is the flat arena of indirect objects that makes up a PDF
// document. Object number 0 is reserved; numbers are allocated densely
// starting at 1. An object may be allocated ahead of its value (to
// support forward references, e.g. a page pointing at its not-yet-built
// parent) and bound later with Bind.
type Table struct {
	version Version
	next    uint32
	bound   map[uint32]Object
	frozen  bool
}

// NewTable returns an empty object table for the given PDF version.
func NewTable(v Version) *Table {
	return &Table{
		version: v,
		next:    1,
		bound:   make(map[uint32]Object),
	}
}

// Version returns the PDF version the table was created with.
func (t *Table) Version() Version {
	return t.version
}

// Alloc reserves a fresh object number without giving it a value.
// The returned Reference must later be passed to Bind exactly once.
func (t *Table) Alloc() Reference {
	num := t.next
	t.next++
	return Reference{Number: num}
}

// Bind assigns value to ref. It fails with ErrAlreadyBound if ref was
// already bound, and with ErrAlreadyFrozen once the table's Writer has
// started serializing.
func (t *Table) Bind(ref Reference, value Object) error {
	if t.frozen {
		return ErrAlreadyFrozen
	}
	if _, ok := t.bound[ref.Number]; ok {
		return ErrAlreadyBound
	}
	t.bound[ref.Number] = value
	return nil
}

// Put allocates a fresh object number, binds value to it, and returns
// the reference in a single call.
func (t *Table) Put(value Object) (Reference, error) {
	ref := t.Alloc()
	if err := t.Bind(ref, value); err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// Resolve returns the value bound to ref, and reports whether ref has
// been bound yet. Resolve never follows chains of references: Table
// values are resolved exactly once, non-recursively, as required by the
// object model (circular parent/child references in the page tree are
// fine, since references are by object number, not by owned value).
func (t *Table) Resolve(ref Reference) (Object, bool) {
	v, ok := t.bound[ref.Number]
	return v, ok
}

// freeze prevents further mutation; called once by Writer.Write.
func (t *Table) freeze() {
	t.frozen = true
}

// numberOrder returns the bound object numbers in ascending order.
func (t *Table) numberOrder() []uint32 {
	nums := make([]uint32, 0, len(t.bound))
	for n := range t.bound {
		nums = append(nums, n)
	}
	sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
	return nums
}

// maxNumber returns the highest object number ever allocated (whether or
// not it was bound), or 0 if none were allocated.
func (t *Table) maxNumber() uint32 {
	if t.next <= 1 {
		return 0
	}
	return t.next - 1
}
