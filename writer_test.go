package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func buildSimpleTable(t *testing.T) (*Table, Reference) {
	t.Helper()
	tab := NewTable(V1_7)

	pagesRef := tab.Alloc()
	contentRef, err := tab.Put(&Stream{Dict: Dict{}, Data: []byte("BT /F1 24 Tf (Hi) Tj ET")})
	if err != nil {
		t.Fatal(err)
	}
	pageRef, err := tab.Put(Dict{
		{"Type", Name("Page")},
		{"Parent", pagesRef},
		{"MediaBox", Rectangle{0, 0, 612, 792}},
		{"Contents", contentRef},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := tab.Bind(pagesRef, Dict{
		{"Type", Name("Pages")},
		{"Kids", Array{pageRef}},
		{"Count", Integer(1)},
	}); err != nil {
		t.Fatal(err)
	}
	catalogRef, err := tab.Put(Dict{
		{"Type", Name("Catalog")},
		{"Pages", pagesRef},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tab, catalogRef
}

func TestWriterProducesWellFormedFile(t *testing.T) {
	tab, root := buildSimpleTable(t)

	var buf bytes.Buffer
	w := NewWriter(tab, root, Reference{}, WriterOptions{})
	if err := w.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "%PDF-1.7\n%") {
		t.Fatalf("missing header: %q", out[:20])
	}
	if !strings.Contains(out, "\nxref\n") {
		t.Error("missing xref section")
	}
	if !strings.Contains(out, "trailer\n") {
		t.Error("missing trailer")
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Error("file must end with %%EOF")
	}
	if !strings.Contains(out, "/Root "+root.String()) {
		t.Error("trailer missing /Root entry")
	}
}

func TestWriterXRefOffsetsAreAccurate(t *testing.T) {
	tab, root := buildSimpleTable(t)

	var buf bytes.Buffer
	w := NewWriter(tab, root, Reference{}, WriterOptions{})
	if err := w.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.Bytes()

	startxrefIdx := bytes.LastIndex(out, []byte("startxref\n"))
	if startxrefIdx < 0 {
		t.Fatal("no startxref")
	}
	rest := out[startxrefIdx+len("startxref\n"):]
	nl := bytes.IndexByte(rest, '\n')
	offsetStr := string(rest[:nl])

	xrefIdx := bytes.Index(out, []byte("\nxref\n"))
	if xrefIdx < 0 {
		t.Fatal("no xref")
	}
	wantOffset := xrefIdx + 1 // skip leading newline
	if offsetStr != itoa(wantOffset) {
		t.Errorf("startxref = %s, want %d", offsetStr, wantOffset)
	}

	// every in-use entry must point at a line of the form "N G obj"
	lines := bytes.Split(out[xrefIdx+len("\nxref\n"):], []byte("\n"))
	var first, count int
	if _, err := fmt.Sscanf(string(lines[0]), "%d %d", &first, &count); err != nil {
		t.Fatalf("bad xref subsection header %q: %v", lines[0], err)
	}
	for i := 1; i < count; i++ {
		entry := string(lines[1+i])
		if !strings.HasSuffix(entry, " n ") {
			continue
		}
		off, err := strconv.Atoi(entry[:10])
		if err != nil {
			t.Fatalf("bad xref entry %q: %v", entry, err)
		}
		want := fmt.Sprintf("%d 0 obj", i)
		if !bytes.HasPrefix(out[off:], []byte(want)) {
			t.Errorf("xref entry %d points at %q, want %q", i, out[off:off+len(want)], want)
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func TestWriterRejectsDanglingReference(t *testing.T) {
	tab := NewTable(V1_7)
	ghost := tab.Alloc() // never bound
	root, err := tab.Put(Dict{{"Type", Name("Catalog")}, {"Pages", ghost}})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	w := NewWriter(tab, root, Reference{}, WriterOptions{})
	if err := w.Write(&buf); err != ErrDanglingReference {
		t.Errorf("Write() = %v, want ErrDanglingReference", err)
	}
}

func TestWriterFreezesTable(t *testing.T) {
	tab, root := buildSimpleTable(t)
	w := NewWriter(tab, root, Reference{}, WriterOptions{})
	if err := w.Write(&bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if err := tab.Bind(tab.Alloc(), Null{}); err != ErrAlreadyFrozen {
		t.Errorf("table mutation after Write: got %v, want ErrAlreadyFrozen", err)
	}
}

func TestWriterDeterministicOutput(t *testing.T) {
	tab1, root1 := buildSimpleTable(t)
	tab2, root2 := buildSimpleTable(t)

	var buf1, buf2 bytes.Buffer
	if err := NewWriter(tab1, root1, Reference{}, WriterOptions{}).Write(&buf1); err != nil {
		t.Fatal(err)
	}
	if err := NewWriter(tab2, root2, Reference{}, WriterOptions{}).Write(&buf2); err != nil {
		t.Fatal(err)
	}
	if buf1.String() != buf2.String() {
		t.Error("identical object graphs produced different byte streams")
	}
}
