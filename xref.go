package pdf

import (
	"fmt"
	"io"
)

// xrefEntry is one row of a classic cross-reference table.
type xrefEntry struct {
	offset int64
	inUse  bool
}

// writeXRefTable writes the classic xref table described in the
// serialization steps: one subsection starting at object 0, then N+1
// fixed-width 20-byte entries. Entry 0 is the head of the free list and
// links to itself (generation 65535). Object numbers that were allocated
// but never bound are also written as free entries, each with offset 0
// and generation 65535.
func writeXRefTable(w io.Writer, entries []xrefEntry) error {
	if _, err := fmt.Fprintf(w, "xref\n0 %d\n", len(entries)); err != nil {
		return err
	}
	for i, e := range entries {
		var err error
		if i == 0 {
			_, err = io.WriteString(w, "0000000000 65535 f \n")
		} else if e.inUse {
			_, err = fmt.Fprintf(w, "%010d %05d n \n", e.offset, 0)
		} else {
			_, err = fmt.Fprintf(w, "%010d %05d f \n", 0, 65535)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
