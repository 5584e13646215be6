package standard

import "testing"

func TestAllAreStandard(t *testing.T) {
	for _, f := range All {
		if !IsStandard(string(f)) {
			t.Errorf("%s: expected to be a standard font", f)
		}
	}
}

func TestIsStandardRejectsUnknown(t *testing.T) {
	if IsStandard("Comic-Sans") {
		t.Error("expected Comic-Sans to not be a standard font")
	}
}

func TestGlyphWidthFallsBackToNotdef(t *testing.T) {
	notdef := Helvetica.GlyphWidth(".notdef")
	got := Helvetica.GlyphWidth("nonexistent-glyph-name")
	if got != notdef {
		t.Errorf("GlyphWidth(unknown) = %v, want .notdef width %v", got, notdef)
	}
}

func TestMetricsNonEmpty(t *testing.T) {
	for _, f := range All {
		m := f.Metrics()
		if len(m.Width) == 0 {
			t.Errorf("%s: expected non-empty width table", f)
		}
	}
}
