package annotation

import "go.inkforge.dev/pdf"

// HighlightMode controls how a link's appearance changes while the mouse
// button is held down over it.
type HighlightMode pdf.Name

const (
	HighlightNone    HighlightMode = "N"
	HighlightInvert  HighlightMode = "I"
	HighlightOutline HighlightMode = "O"
	HighlightPush    HighlightMode = "P"
)

// Link is a clickable region that jumps to a destination elsewhere in the
// document, or to a URI.
type Link struct {
	Common

	// Dest is the page this link jumps to, or the zero Reference if the
	// link uses URI instead.
	Dest pdf.Reference

	// URI is the external resource this link opens. When URI is non-empty
	// it takes precedence and Dest is not written.
	URI string

	Highlight HighlightMode
}

func (l *Link) AnnotationType() pdf.Name { return "Link" }

func (l *Link) ToDict() pdf.Dict {
	d := pdf.Dict{{"Subtype", pdf.Name("Link")}}
	l.fillDict(&d)
	switch {
	case l.URI != "":
		d.Set("A", pdf.Dict{
			{"S", pdf.Name("URI")},
			{"URI", pdf.NewString(l.URI)},
		})
	case !l.Dest.IsZero():
		d.Set("Dest", pdf.Array{l.Dest, pdf.Name("Fit")})
	}
	if l.Highlight != "" && l.Highlight != HighlightInvert {
		d.Set("H", pdf.Name(l.Highlight))
	}
	return d
}
