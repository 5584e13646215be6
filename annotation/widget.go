package annotation

import "go.inkforge.dev/pdf"

// FieldType is the value of a form field's /FT entry.
type FieldType pdf.Name

const (
	FieldButton   FieldType = "Btn"
	FieldText     FieldType = "Tx"
	FieldChoice   FieldType = "Ch"
	FieldSignature FieldType = "Sig"
)

// Widget is the screen appearance of an interactive form field. Unlike
// [Text] and [Link], a Widget annotation doubles as the field dictionary
// it annotates: PDF lets the two be merged when a field has exactly one
// widget, which is the only case this package produces.
type Widget struct {
	Common

	Type  FieldType
	Name  string // fully qualified field name, /T
	Value string // /V, interpreted according to Type

	// DefaultAppearance is the /DA operator string used to render the
	// field's value (font, size, color).
	DefaultAppearance string

	// AppearanceStream is the normal appearance XObject for this widget's
	// /AP /N entry.
	AppearanceStream pdf.Reference
}

func (w *Widget) AnnotationType() pdf.Name { return "Widget" }

func (w *Widget) ToDict() pdf.Dict {
	d := pdf.Dict{{"Subtype", pdf.Name("Widget")}}
	w.fillDict(&d)
	if w.Type != "" {
		d.Set("FT", pdf.Name(w.Type))
	}
	if w.Name != "" {
		d.Set("T", pdf.TextString(w.Name))
	}
	if w.Value != "" {
		d.Set("V", pdf.TextString(w.Value))
	}
	if w.DefaultAppearance != "" {
		d.Set("DA", pdf.NewString(w.DefaultAppearance))
	}
	if !w.AppearanceStream.IsZero() {
		d.Set("AP", pdf.Dict{{"N", w.AppearanceStream}})
	}
	return d
}
