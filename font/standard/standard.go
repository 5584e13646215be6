// Package standard lists the 14 standard PDF fonts: every conformant
// viewer can render them without an embedded font program.
package standard

import "go.inkforge.dev/pdf/internal/stdmtx"

// Font identifies one of the 14 standard fonts by its PDF BaseFont name.
type Font string

const (
	Helvetica             Font = "Helvetica"
	HelveticaBold         Font = "Helvetica-Bold"
	HelveticaOblique      Font = "Helvetica-Oblique"
	HelveticaBoldOblique  Font = "Helvetica-BoldOblique"
	TimesRoman            Font = "Times-Roman"
	TimesBold             Font = "Times-Bold"
	TimesItalic           Font = "Times-Italic"
	TimesBoldItalic       Font = "Times-BoldItalic"
	Courier               Font = "Courier"
	CourierBold           Font = "Courier-Bold"
	CourierOblique        Font = "Courier-Oblique"
	CourierBoldOblique    Font = "Courier-BoldOblique"
	Symbol                Font = "Symbol"
	ZapfDingbats          Font = "ZapfDingbats"
)

// All lists the 14 standard fonts in AFM-catalogue order.
var All = []Font{
	Helvetica, HelveticaBold, HelveticaOblique, HelveticaBoldOblique,
	TimesRoman, TimesBold, TimesItalic, TimesBoldItalic,
	Courier, CourierBold, CourierOblique, CourierBoldOblique,
	Symbol, ZapfDingbats,
}

// IsStandard reports whether name is one of the 14 standard fonts.
func IsStandard(name string) bool {
	_, ok := stdmtx.Metrics[name]
	return ok
}

// Metrics returns the AFM-style metrics for f.
func (f Font) Metrics() stdmtx.FontMetrics {
	return stdmtx.Metrics[string(f)]
}

// GlyphWidth returns the width of glyphName in 1/1000 em units, or the
// width of .notdef if the font has no such glyph.
func (f Font) GlyphWidth(glyphName string) float64 {
	m := stdmtx.Metrics[string(f)]
	if w, ok := m.Width[glyphName]; ok {
		return w
	}
	return m.Width[".notdef"]
}
