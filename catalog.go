package pdf

import "golang.org/x/text/language"

// Catalog is the PDF document catalog: the root of the object graph that
// every Writer output points at via the trailer's /Root entry. Only the
// fields this module's write-only scope can populate are kept; a reader
// would need the rest of ISO 32000-1 7.7.2, but nothing here ever reads
// one back.
type Catalog struct {
	// Pages is the root of the page tree.
	Pages Reference

	// Metadata is the optional XMP metadata stream, built by
	// pdf/metadata and bound separately.
	Metadata Reference

	// Lang is the natural language for text in the document, written as
	// a BCP 47 tag string.
	Lang language.Tag

	// PageLayout selects how a viewer lays out pages when the document
	// is opened: SinglePage, OneColumn, TwoColumnLeft, TwoColumnRight,
	// TwoPageLeft, or TwoPageRight. Empty means "viewer default".
	PageLayout Name

	// PageMode selects the initial UI mode: UseNone, UseOutlines,
	// UseThumbs, FullScreen, UseOC, or UseAttachments.
	PageMode Name

	// ViewerPreferences, if non-nil, is embedded verbatim as the
	// /ViewerPreferences dictionary.
	ViewerPreferences Dict

	// AcroForm, if non-nil, is the interactive form dictionary built by
	// the annotation/form-field subsystem.
	AcroForm Reference
}

// ToDict builds the catalog's PDF dictionary. Unlike [Object] values,
// Catalog is encoded through ToDict rather than implementing Object
// itself: a Catalog only ever exists as the value of a bound reference,
// never nested inside another value, so there is no need to satisfy the
// interface directly (see the design note on explicit to-dict methods
// over reflection tags).
func (c *Catalog) ToDict() Dict {
	d := Dict{
		{"Type", Name("Catalog")},
		{"Pages", c.Pages},
	}
	if !c.Metadata.IsZero() {
		d.Set("Metadata", c.Metadata)
	}
	if tag := c.Lang; tag != language.Und {
		d.Set("Lang", TextString(tag.String()))
	}
	if c.PageLayout != "" {
		d.Set("PageLayout", c.PageLayout)
	}
	if c.PageMode != "" {
		d.Set("PageMode", c.PageMode)
	}
	if c.ViewerPreferences != nil {
		d.Set("ViewerPreferences", c.ViewerPreferences)
	}
	if !c.AcroForm.IsZero() {
		d.Set("AcroForm", c.AcroForm)
	}
	return d
}

// Info is the PDF document information dictionary, bound separately from
// the catalog and referenced from the trailer's optional /Info entry.
type Info struct {
	Title, Author, Subject, Keywords, Creator, Producer TextString
	CreationDate, ModDate                                Date
}

// ToDict builds the /Info dictionary, omitting any field left at its
// zero value.
func (info *Info) ToDict() Dict {
	d := Dict{}
	add := func(key Name, v TextString) {
		if v != "" {
			d.Set(key, v)
		}
	}
	add("Title", info.Title)
	add("Author", info.Author)
	add("Subject", info.Subject)
	add("Keywords", info.Keywords)
	add("Creator", info.Creator)
	add("Producer", info.Producer)
	if !info.CreationDate.isZero() {
		d.Set("CreationDate", info.CreationDate)
	}
	if !info.ModDate.isZero() {
		d.Set("ModDate", info.ModDate)
	}
	return d
}
