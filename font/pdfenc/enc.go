package pdfenc

// An Encoding is a mapping from single byte codes to glyph names.
type Encoding struct {
	Encoding [256]string
	Has      map[string]bool
}

// hasMap derives a glyph-name membership set from a 256-entry code table,
// skipping the ".notdef" placeholder.
func hasMap(table [256]string) map[string]bool {
	has := make(map[string]bool, len(table))
	for _, name := range table {
		if name != "" && name != ".notdef" {
			has[name] = true
		}
	}
	return has
}

var standardEncodingHas = hasMap(StandardEncoding)
var winAnsiEncodingHas = hasMap(WinAnsiEncoding)
var macRomanEncodingHas = hasMap(macRomanEncoding)
var symbolEncodingHas = hasMap(SymbolEncoding)

// Standard is the Adobe Standard Encoding for Latin text.
//
// See Appendix D.2 of PDF 32000-1:2008.
var Standard = Encoding{
	Encoding: StandardEncoding,
	Has:      standardEncodingHas,
}

// WinAnsi is the PDF version of the standard Microsoft Windows specific
// encoding for Latin text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var WinAnsi = Encoding{
	Encoding: WinAnsiEncoding,
	Has:      winAnsiEncodingHas,
}

// MacRoman is the PDF version of the MacOS standard encoding for Latin
// text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var MacRoman = Encoding{
	Encoding: macRomanEncoding,
	Has:      macRomanEncodingHas,
}

// Symbol is the built-in encoding for the Symbol font.
//
// See Appendix D.5 of PDF 32000-1:2008.
var Symbol = Encoding{
	Encoding: SymbolEncoding,
	Has:      symbolEncodingHas,
}

// ZapfDingbats is the built-in encoding of the ZapfDingbats font.
//
// See Appendix D.6 of PDF 32000-1:2008.
var ZapfDingbats = Encoding{
	Encoding: zapfDingbatsEncoding,
	Has:      zapfDingbatsEncodingHas,
}

// PDFDoc is an encoding for text strings in a PDF document outside the
// document's content streams.
//
// See Appendix D.2 of PDF 32000-1:2008.
var PDFDoc = Encoding{
	Encoding: pdfDocEncoding,
	Has:      pdfDocEncodingHas,
}
