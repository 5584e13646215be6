package annotation

import "go.inkforge.dev/pdf"

// TextIcon names one of the standard icons a viewer may use to render a
// closed text annotation.
type TextIcon pdf.Name

const (
	IconComment TextIcon = "Comment"
	IconKey     TextIcon = "Key"
	IconNote    TextIcon = "Note"
	IconHelp    TextIcon = "Help"
	IconParagraph TextIcon = "Paragraph"
	IconNewParagraph TextIcon = "NewParagraph"
	IconInsert  TextIcon = "Insert"
)

// Text is a "sticky note" annotation: a popup of text attached to a point
// on the page.
type Text struct {
	Common

	// Open indicates that the annotation should initially be displayed open.
	Open bool

	// Icon selects the icon used to represent the closed annotation.
	Icon TextIcon
}

func (t *Text) AnnotationType() pdf.Name { return "Text" }

func (t *Text) ToDict() pdf.Dict {
	d := pdf.Dict{{"Subtype", pdf.Name("Text")}}
	t.fillDict(&d)
	if t.Open {
		d.Set("Open", pdf.Boolean(true))
	}
	if t.Icon != "" {
		d.Set("Name", pdf.Name(t.Icon))
	}
	return d
}
