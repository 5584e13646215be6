// Package annotation builds the annotation dictionaries a page can carry:
// text notes, hyperlinks, and form-field widgets.
package annotation

import (
	"go.inkforge.dev/pdf"
)

// Annotation is anything that can encode itself as a PDF annotation
// dictionary.
type Annotation interface {
	AnnotationType() pdf.Name
	ToDict() pdf.Dict
}

// Common holds the fields shared by every annotation subtype. Flags is
// declared in flags.go alongside its String method.
type Common struct {
	// Rect is the annotation's position and extent, in default user space.
	Rect pdf.Rectangle

	// Contents is the textual content shown for the annotation; its exact
	// meaning depends on the subtype.
	Contents string

	// Name, if set, must be unique among the annotations on one page.
	Name string

	Flags Flags

	// Color is the /C entry: up to 4 components, interpreted as Gray, RGB
	// or CMYK by count. A nil Color omits the entry.
	Color []float64
}

// fillDict adds the Common fields to d.
func (c *Common) fillDict(d *pdf.Dict) {
	d.Set("Rect", &c.Rect)
	if c.Contents != "" {
		d.Set("Contents", pdf.TextString(c.Contents))
	}
	if c.Name != "" {
		d.Set("NM", pdf.TextString(c.Name))
	}
	if c.Flags != 0 {
		d.Set("F", pdf.Integer(c.Flags))
	}
	if c.Color != nil {
		arr := make(pdf.Array, len(c.Color))
		for i, v := range c.Color {
			arr[i] = pdf.Real(v)
		}
		d.Set("C", arr)
	}
}
