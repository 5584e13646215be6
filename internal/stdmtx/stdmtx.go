// Package stdmtx carries the AFM-style width metrics for the 14 standard
// PDF fonts, keyed by PostScript glyph name, in 1/1000 em units.
package stdmtx

// FontBBox is the font-wide bounding box, in 1/1000 em units.
type FontBBox struct {
	LLx, LLy, URx, URy float64
}

// Covers reports whether b is entirely contained in f.
func (f FontBBox) Covers(b FontBBox) bool {
	return b.LLx >= f.LLx && b.LLy >= f.LLy && b.URx <= f.URx && b.URy <= f.URy
}

// FontMetrics carries the metrics needed to lay out text in a standard
// font without access to the underlying font program.
type FontMetrics struct {
	FontBBox   FontBBox
	Width      map[string]float64 // keyed by PostScript glyph name
	Ascent     float64
	Descent    float64
	CapHeight  float64
	XHeight    float64
	ItalicSlant float64 // degrees, 0 for upright faces
	IsFixedPitch bool
}

// scaledWidths returns a copy of the glyph-width table base with every
// width multiplied by scale. Glyph names in these tables follow the Adobe
// StandardEncoding/WinAnsiEncoding naming used by the PDF standard-14 AFM
// files.
func scaledWidths(base map[string]float64, scale float64) map[string]float64 {
	out := make(map[string]float64, len(base))
	for k, v := range base {
		out[k] = v * scale
	}
	return out
}

var helveticaWidths = map[string]float64{
	".notdef": 278, "space": 278, "exclam": 278, "quotedbl": 355,
	"numbersign": 556, "dollar": 556, "percent": 889, "ampersand": 667,
	"quotesingle": 191, "parenleft": 333, "parenright": 333, "asterisk": 389,
	"plus": 584, "comma": 278, "hyphen": 333, "period": 278, "slash": 278,
	"zero": 556, "one": 556, "two": 556, "three": 556, "four": 556,
	"five": 556, "six": 556, "seven": 556, "eight": 556, "nine": 556,
	"colon": 278, "semicolon": 278, "less": 584, "equal": 584, "greater": 584,
	"question": 556, "at": 1015,
	"A": 667, "B": 667, "C": 722, "D": 722, "E": 667, "F": 611, "G": 778,
	"H": 722, "I": 278, "J": 500, "K": 667, "L": 556, "M": 833, "N": 722,
	"O": 778, "P": 667, "Q": 778, "R": 722, "S": 667, "T": 611, "U": 722,
	"V": 667, "W": 944, "X": 667, "Y": 667, "Z": 611,
	"bracketleft": 278, "backslash": 278, "bracketright": 278,
	"asciicircum": 469, "underscore": 556, "grave": 333,
	"a": 556, "b": 556, "c": 500, "d": 556, "e": 556, "f": 278, "g": 556,
	"h": 556, "i": 222, "j": 222, "k": 500, "l": 222, "m": 833, "n": 556,
	"o": 556, "p": 556, "q": 556, "r": 333, "s": 500, "t": 278, "u": 556,
	"v": 500, "w": 722, "x": 500, "y": 500, "z": 500,
	"braceleft": 334, "bar": 260, "braceright": 334, "asciitilde": 584,
}

var timesWidths = map[string]float64{
	".notdef": 250, "space": 250, "exclam": 333, "quotedbl": 408,
	"numbersign": 500, "dollar": 500, "percent": 833, "ampersand": 778,
	"quotesingle": 180, "parenleft": 333, "parenright": 333, "asterisk": 500,
	"plus": 564, "comma": 250, "hyphen": 333, "period": 250, "slash": 278,
	"zero": 500, "one": 500, "two": 500, "three": 500, "four": 500,
	"five": 500, "six": 500, "seven": 500, "eight": 500, "nine": 500,
	"colon": 278, "semicolon": 278, "less": 564, "equal": 564, "greater": 564,
	"question": 444, "at": 921,
	"A": 722, "B": 667, "C": 667, "D": 722, "E": 611, "F": 556, "G": 722,
	"H": 722, "I": 333, "J": 389, "K": 722, "L": 611, "M": 889, "N": 722,
	"O": 722, "P": 556, "Q": 722, "R": 667, "S": 556, "T": 611, "U": 722,
	"V": 722, "W": 944, "X": 722, "Y": 722, "Z": 611,
	"bracketleft": 333, "backslash": 278, "bracketright": 333,
	"asciicircum": 469, "underscore": 500, "grave": 333,
	"a": 444, "b": 500, "c": 444, "d": 500, "e": 444, "f": 333, "g": 500,
	"h": 500, "i": 278, "j": 278, "k": 500, "l": 278, "m": 778, "n": 500,
	"o": 500, "p": 500, "q": 500, "r": 333, "s": 389, "t": 278, "u": 500,
	"v": 500, "w": 722, "x": 500, "y": 500, "z": 444,
	"braceleft": 480, "bar": 200, "braceright": 480, "asciitilde": 541,
}

// courierWidths: every glyph advances by the same 600 units, per the
// Font Manager's monospace rule.
func courierWidths() map[string]float64 {
	w := make(map[string]float64, len(helveticaWidths))
	for name := range helveticaWidths {
		w[name] = 600
	}
	return w
}

// Metrics holds the metrics for each of the 14 standard font names, keyed
// by their PDF BaseFont value (e.g. "Helvetica-BoldOblique").
var Metrics = map[string]FontMetrics{
	"Helvetica": {
		FontBBox: FontBBox{-166, -225, 1000, 931},
		Width:    helveticaWidths,
		Ascent:   718, Descent: -207, CapHeight: 718, XHeight: 523,
	},
	"Helvetica-Bold": {
		FontBBox: FontBBox{-170, -228, 1003, 962},
		Width:    scaledWidths(helveticaWidths, 1.1),
		Ascent:   718, Descent: -207, CapHeight: 718, XHeight: 532,
	},
	"Helvetica-Oblique": {
		FontBBox: FontBBox{-170, -225, 1116, 931},
		Width:    helveticaWidths,
		Ascent:   718, Descent: -207, CapHeight: 718, XHeight: 523,
		ItalicSlant: -12,
	},
	"Helvetica-BoldOblique": {
		FontBBox: FontBBox{-174, -228, 1114, 962},
		Width:    scaledWidths(helveticaWidths, 1.1),
		Ascent:   718, Descent: -207, CapHeight: 718, XHeight: 532,
		ItalicSlant: -12,
	},
	"Times-Roman": {
		FontBBox: FontBBox{-168, -218, 1000, 898},
		Width:    timesWidths,
		Ascent:   683, Descent: -217, CapHeight: 662, XHeight: 450,
	},
	"Times-Bold": {
		FontBBox: FontBBox{-168, -218, 1000, 935},
		Width:    scaledWidths(timesWidths, 1.1),
		Ascent:   683, Descent: -217, CapHeight: 676, XHeight: 461,
	},
	"Times-Italic": {
		FontBBox: FontBBox{-169, -217, 1010, 883},
		Width:    timesWidths,
		Ascent:   683, Descent: -217, CapHeight: 653, XHeight: 441,
		ItalicSlant: -15.5,
	},
	"Times-BoldItalic": {
		FontBBox: FontBBox{-200, -218, 996, 921},
		Width:    scaledWidths(timesWidths, 1.1),
		Ascent:   683, Descent: -217, CapHeight: 669, XHeight: 462,
		ItalicSlant: -15,
	},
	"Courier": {
		FontBBox: FontBBox{-23, -250, 715, 805},
		Width:    courierWidths(),
		Ascent:   627, Descent: -236, CapHeight: 562, XHeight: 426,
		IsFixedPitch: true,
	},
	"Courier-Bold": {
		FontBBox: FontBBox{-113, -250, 749, 801},
		Width:    courierWidths(),
		Ascent:   627, Descent: -236, CapHeight: 562, XHeight: 439,
		IsFixedPitch: true,
	},
	"Courier-Oblique": {
		FontBBox: FontBBox{-27, -250, 849, 805},
		Width:    courierWidths(),
		Ascent:   627, Descent: -236, CapHeight: 562, XHeight: 426,
		IsFixedPitch: true, ItalicSlant: -12,
	},
	"Courier-BoldOblique": {
		FontBBox: FontBBox{-57, -250, 869, 801},
		Width:    courierWidths(),
		Ascent:   627, Descent: -236, CapHeight: 562, XHeight: 439,
		IsFixedPitch: true, ItalicSlant: -12,
	},
	"Symbol": {
		FontBBox: FontBBox{-180, -293, 1090, 1010},
		Width:    map[string]float64{".notdef": 250, "space": 250},
		Ascent: 0, Descent: 0, CapHeight: 0, XHeight: 0,
	},
	"ZapfDingbats": {
		FontBBox: FontBBox{-1, -143, 981, 820},
		Width:    map[string]float64{".notdef": 278, "space": 278},
		Ascent: 0, Descent: 0, CapHeight: 0, XHeight: 0,
	},
}
