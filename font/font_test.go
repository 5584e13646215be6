package font

import (
	"testing"

	"go.inkforge.dev/pdf"
	"go.inkforge.dev/pdf/font/standard"
)

func TestManagerDeduplicates(t *testing.T) {
	tab := pdf.NewTable(pdf.V1_7)
	m := NewManager(tab)

	prog := NewStandard(standard.Helvetica)
	ref1, err := m.Embed(prog)
	if err != nil {
		t.Fatal(err)
	}
	ref2, err := m.Embed(prog)
	if err != nil {
		t.Fatal(err)
	}
	if ref1 != ref2 {
		t.Errorf("expected the same *Ref for repeated Embed calls, got %p and %p", ref1, ref2)
	}
	if ref1.Name != "F1" {
		t.Errorf("Name = %q, want F1", ref1.Name)
	}
}

func TestManagerDistinctFontsGetDistinctNames(t *testing.T) {
	tab := pdf.NewTable(pdf.V1_7)
	m := NewManager(tab)

	ref1, err := m.Embed(NewStandard(standard.Helvetica))
	if err != nil {
		t.Fatal(err)
	}
	ref2, err := m.Embed(NewStandard(standard.TimesRoman))
	if err != nil {
		t.Fatal(err)
	}
	if ref1.Name == ref2.Name {
		t.Errorf("expected distinct resource names, both got %q", ref1.Name)
	}
}

func TestRefWidth(t *testing.T) {
	prog := NewStandard(standard.Helvetica)
	ref := &Ref{Name: "F1", Program: prog}
	w := ref.Width("A")
	if w <= 0 {
		t.Errorf("Width(\"A\") = %v, want > 0", w)
	}
}
