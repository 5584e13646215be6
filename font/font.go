// Package font allocates and deduplicates the font resources a document
// uses, and exposes the width information needed to lay out text.
package font

import (
	"fmt"

	"go.inkforge.dev/pdf"
	"go.inkforge.dev/pdf/font/pdfenc"
	"go.inkforge.dev/pdf/font/standard"
	"go.inkforge.dev/pdf/internal/stdmtx"
)

// Program is the information a document needs about a font to embed and
// use it: the PDF font name, the glyph widths, and (for non-standard
// fonts) an embeddable font program. The standard 14 fonts implement this
// without an embedded program, since conformant viewers already have them.
type Program interface {
	// BaseFont is the /BaseFont value, e.g. "Helvetica" or a subset tag
	// plus the font's PostScript name.
	BaseFont() pdf.Name

	// Encoding maps single-byte codes to glyph names.
	Encoding() pdfenc.Encoding

	// Width returns the advance width of glyphName, in 1/1000 em units.
	Width(glyphName string) float64

	// UnitsPerEm is the number of font design units per em square.
	UnitsPerEm() int

	// Metrics returns the font-wide vertical metrics.
	Metrics() stdmtx.FontMetrics

	// Embed returns the data for an embedded font file stream, or nil if
	// the font relies on the viewer's built-in version (as the 14
	// standard fonts do).
	Embed() []byte
}

// Standard wraps one of the 14 standard fonts as a Program.
type Standard struct {
	Font standard.Font
	Enc  pdfenc.Encoding
}

// NewStandard returns a Program for one of the 14 standard fonts, using
// WinAnsi as the default text encoding (Symbol and ZapfDingbats ignore
// the encoding and always use their built-in one).
func NewStandard(f standard.Font) *Standard {
	enc := pdfenc.WinAnsi
	if f == standard.Symbol {
		enc = pdfenc.Symbol
	} else if f == standard.ZapfDingbats {
		enc = pdfenc.ZapfDingbats
	}
	return &Standard{Font: f, Enc: enc}
}

func (s *Standard) BaseFont() pdf.Name         { return pdf.Name(s.Font) }
func (s *Standard) Encoding() pdfenc.Encoding  { return s.Enc }
func (s *Standard) UnitsPerEm() int            { return 1000 }
func (s *Standard) Metrics() stdmtx.FontMetrics { return s.Font.Metrics() }
func (s *Standard) Embed() []byte              { return nil }

func (s *Standard) Width(glyphName string) float64 {
	return s.Font.GlyphWidth(glyphName)
}

// Ref is a font already embedded in a document: its resource name (e.g.
// "/F1") and the indirect reference to its font dictionary.
type Ref struct {
	Name pdf.Name
	Dict pdf.Reference
	Program Program
}

func (r *Ref) ResourceName() pdf.Name { return r.Name }

// Width returns the width of text set in this font at size 1, by summing
// each byte's glyph advance according to the font's encoding. Bytes with
// no assigned glyph name fall back to .notdef.
func (r *Ref) Width(text string) float64 {
	enc := r.Program.Encoding()
	var total float64
	for i := 0; i < len(text); i++ {
		name := enc.Encoding[text[i]]
		if name == "" {
			name = ".notdef"
		}
		total += r.Program.Width(name) / 1000
	}
	return total
}

// dedupKey identifies equivalent font embeddings: same program, same
// encoding. Two requests for the same standard font and encoding share a
// single PDF font resource instead of being embedded twice.
type dedupKey struct {
	baseFont pdf.Name
	encName  pdf.Name
}

// Manager allocates and deduplicates font resources for one document.
type Manager struct {
	tab   *pdf.Table
	refs  map[dedupKey]*Ref
	count int
}

// NewManager returns a font manager that allocates objects in tab.
func NewManager(tab *pdf.Table) *Manager {
	return &Manager{tab: tab, refs: make(map[dedupKey]*Ref)}
}

// Embed returns a [Ref] for prog, reusing a previously embedded resource
// with the same base font and encoding if one exists.
func (m *Manager) Embed(prog Program) (*Ref, error) {
	key := dedupKey{baseFont: prog.BaseFont(), encName: encodingName(prog.Encoding())}
	if ref, ok := m.refs[key]; ok {
		return ref, nil
	}

	d := pdf.Dict{
		{"Type", pdf.Name("Font")},
		{"Subtype", pdf.Name("Type1")},
		{"BaseFont", prog.BaseFont()},
	}
	if enc := key.encName; enc != "" {
		d.Set("Encoding", enc)
	}

	dictRef, err := m.tab.Put(d)
	if err != nil {
		return nil, err
	}

	m.count++
	ref := &Ref{
		Name:    pdf.Name(fmt.Sprintf("F%d", m.count)),
		Dict:    dictRef,
		Program: prog,
	}
	m.refs[key] = ref
	return ref, nil
}

// encodingName returns the PDF base encoding name for enc, if it
// corresponds to one of the predefined encodings; symbolic fonts (Symbol,
// ZapfDingbats) have no base encoding name and keep their built-in one.
func encodingName(enc pdfenc.Encoding) pdf.Name {
	switch {
	case sameEncoding(enc, pdfenc.WinAnsi):
		return "WinAnsiEncoding"
	case sameEncoding(enc, pdfenc.MacRoman):
		return "MacRomanEncoding"
	case sameEncoding(enc, pdfenc.Standard):
		return "StandardEncoding"
	default:
		return ""
	}
}

func sameEncoding(a, b pdfenc.Encoding) bool {
	return a.Encoding == b.Encoding
}
