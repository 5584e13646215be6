// Package document assembles pages, fonts and resources into a complete
// PDF file.
package document

import (
	"bytes"
	"io"

	"go.inkforge.dev/pdf"
	"go.inkforge.dev/pdf/annotation"
	"go.inkforge.dev/pdf/content"
	"go.inkforge.dev/pdf/filter"
	"go.inkforge.dev/pdf/font"
	"go.inkforge.dev/pdf/image"
	"go.inkforge.dev/pdf/metadata"
	"go.inkforge.dev/pdf/pagetree"
	"go.inkforge.dev/pdf/resources"
)

// ImageRef is a page-local handle on an embedded image, ready to pass to
// content.Writer.DrawXObject.
type ImageRef struct {
	name pdf.Name
}

// ResourceName implements content.XObject.
func (r ImageRef) ResourceName() pdf.Name { return r.name }

// Page is a single page under construction: a content stream builder with
// its own resource catalog, plus the page-level attributes that override
// the document's defaults.
type Page struct {
	*content.Writer

	buf       *bytes.Buffer
	Resources *resources.Catalog
	MediaBox  *pdf.Rectangle // nil inherits the document default
	CropBox   *pdf.Rectangle // nil omits the entry
	TrimBox   *pdf.Rectangle
	BleedBox  *pdf.Rectangle
	ArtBox    *pdf.Rectangle
	Rotate    int // 0 inherits (no override written)

	fonts       *font.Manager
	ref         pdf.Reference
	doc         *Document
	annotations []annotation.Annotation
	extGStates  map[[2]float64]pdf.Name
}

// AddAnnotation attaches a to this page's /Annots array. A [annotation.Widget]
// is additionally collected into the document's /AcroForm /Fields array
// when Save runs, sharing the same indirect object as its page
// annotation: PDF allows a field with exactly one widget to merge the
// two dictionaries, which is the only shape this package produces.
func (p *Page) AddAnnotation(a annotation.Annotation) {
	p.annotations = append(p.annotations, a)
}

// AddFont embeds prog (or reuses an existing embedding of an equivalent
// font) and installs it in this page's resource catalog, returning a
// content.Font ready to pass to TextSetFont.
func (p *Page) AddFont(prog font.Program) (*font.Ref, error) {
	ref, err := p.fonts.Embed(prog)
	if err != nil {
		return nil, err
	}
	p.Resources.AddFont(ref.Name, ref.Dict)
	return ref, nil
}

// SetOpacity installs an ExtGState with the given fill and stroke alpha
// (0 = fully transparent, 1 = fully opaque) and emits the operator that
// selects it (operator "gs"). Requesting the same (fillAlpha, strokeAlpha)
// pair twice on the same page reuses the first ExtGState object.
func (p *Page) SetOpacity(fillAlpha, strokeAlpha float64) error {
	key := [2]float64{fillAlpha, strokeAlpha}
	if p.extGStates == nil {
		p.extGStates = make(map[[2]float64]pdf.Name)
	}
	if name, ok := p.extGStates[key]; ok {
		p.Writer.SetExtGState(name)
		return nil
	}

	ref, err := p.doc.tab.Put(pdf.Dict{
		{"Type", pdf.Name("ExtGState")},
		{"ca", pdf.Real(fillAlpha)},
		{"CA", pdf.Real(strokeAlpha)},
	})
	if err != nil {
		return err
	}
	name := p.Resources.AddExtGState(ref)
	p.extGStates[key] = name
	p.Writer.SetExtGState(name)
	return nil
}

// AddColorSpace installs spec (e.g. a Separation or ICCBased color space
// array) as an indirect object and returns the resource name to pass to
// content.Writer.SetFillColorSpace / SetStrokeColorSpace.
func (p *Page) AddColorSpace(spec pdf.Object) (pdf.Name, error) {
	ref, err := p.doc.tab.Put(spec)
	if err != nil {
		return "", err
	}
	return p.Resources.AddColorSpace(ref), nil
}

// AddImage embeds desc as an Image XObject, compressing its samples with
// Flate, and installs it in this page's resource catalog. If desc has
// alpha data attached via mask, the mask is embedded first as a
// DeviceGray soft mask and wired to desc's /SMask entry.
func (p *Page) AddImage(desc *image.Descriptor, mask *image.Descriptor) (ImageRef, error) {
	if mask != nil {
		maskStream, err := mask.ToStream(imageCompressor)
		if err != nil {
			return ImageRef{}, err
		}
		maskRef, err := p.doc.tab.Put(maskStream)
		if err != nil {
			return ImageRef{}, err
		}
		desc.SoftMask = maskRef
	}

	stream, err := desc.ToStream(imageCompressor)
	if err != nil {
		return ImageRef{}, err
	}
	ref, err := p.doc.tab.Put(stream)
	if err != nil {
		return ImageRef{}, err
	}
	return ImageRef{name: p.Resources.AddXObject(ref)}, nil
}

// Document collects pages and owns the object table they are written
// into. Create a Document, add pages with AddPage, draw into each page's
// content.Writer, and call Save once.
type Document struct {
	tab         *pdf.Table
	fonts       *font.Manager
	tree        *pagetree.Builder
	defaultSize pdf.Rectangle
	catalogRef  pdf.Reference
	infoRef     pdf.Reference
	info        pdf.Info
	pages       []*Page

	metadata       *metadata.Properties
	metadataPretty bool

	widgetRefs []pdf.Reference
}

// Create returns a new, empty document. defaultSize is used as the
// /MediaBox for any page that does not set its own.
func Create(v pdf.Version, defaultSize pdf.Rectangle) *Document {
	tab := pdf.NewTable(v)
	return &Document{
		tab:         tab,
		fonts:       font.NewManager(tab),
		tree:        pagetree.NewBuilder(tab),
		defaultSize: defaultSize,
		catalogRef:  tab.Alloc(),
		infoRef:     tab.Alloc(),
	}
}

// SetInfo sets the document information dictionary.
func (doc *Document) SetInfo(info pdf.Info) {
	doc.info = info
}

// SetMetadata attaches an XMP metadata stream built from props, written
// with indentation if pretty is true. Save embeds it and links it from
// the document catalog.
func (doc *Document) SetMetadata(props metadata.Properties, pretty bool) {
	doc.metadata = &props
	doc.metadataPretty = pretty
}

// AddPage starts a new page and returns it for drawing. Pages are written
// to the file in the order AddPage is called.
func (doc *Document) AddPage() *Page {
	buf := &bytes.Buffer{}
	p := &Page{
		Writer:    content.NewWriter(buf),
		buf:       buf,
		Resources: resources.NewCatalog(),
		fonts:     doc.fonts,
		ref:       doc.tab.Alloc(),
		doc:       doc,
	}
	doc.pages = append(doc.pages, p)
	return p
}

// contentCompressor is the filter applied to every page's content stream.
var contentCompressor = filter.Flate{}

// imageCompressor is the filter applied to embedded image samples.
var imageCompressor = filter.Flate{}

// Save finalizes every page, builds the page tree and catalog, and writes
// the complete PDF file to w.
func (doc *Document) Save(w io.Writer, opts pdf.WriterOptions) error {
	for _, p := range doc.pages {
		if p.Writer.Err != nil {
			return p.Writer.Err
		}

		d := pdf.Dict{}
		if p.MediaBox != nil {
			d.Set("MediaBox", p.MediaBox)
		}
		if p.CropBox != nil {
			d.Set("CropBox", p.CropBox)
		}
		if p.TrimBox != nil {
			d.Set("TrimBox", p.TrimBox)
		}
		if p.BleedBox != nil {
			d.Set("BleedBox", p.BleedBox)
		}
		if p.ArtBox != nil {
			d.Set("ArtBox", p.ArtBox)
		}
		if p.Rotate != 0 {
			d.Set("Rotate", pdf.Integer(p.Rotate))
		}
		d.Set("Resources", p.Resources.ToDict())

		compressed, err := contentCompressor.Compress(p.buf.Bytes())
		if err != nil {
			return err
		}
		contentRef, err := doc.tab.Put(&pdf.Stream{
			Dict: pdf.Dict{{"Filter", contentCompressor.Name()}},
			Data: compressed,
		})
		if err != nil {
			return err
		}
		d.Set("Contents", contentRef)

		if len(p.annotations) > 0 {
			arr := make(pdf.Array, len(p.annotations))
			for i, a := range p.annotations {
				ref, err := doc.tab.Put(a.ToDict())
				if err != nil {
					return err
				}
				arr[i] = ref
				if _, ok := a.(*annotation.Widget); ok {
					doc.widgetRefs = append(doc.widgetRefs, ref)
				}
			}
			d.Set("Annots", arr)
		}

		doc.tree.AddPage(p.ref, d)
	}

	box := doc.defaultSize
	doc.tree.Inheritable.Set("MediaBox", &box)
	pagesRef, err := doc.tree.Build()
	if err != nil {
		return err
	}

	catalog := pdf.Catalog{Pages: pagesRef}
	if doc.metadata != nil {
		stream, err := metadata.Build(*doc.metadata, doc.metadataPretty)
		if err != nil {
			return err
		}
		metadataRef, err := doc.tab.Put(stream)
		if err != nil {
			return err
		}
		catalog.Metadata = metadataRef
	}
	if len(doc.widgetRefs) > 0 {
		fields := make(pdf.Array, len(doc.widgetRefs))
		for i, ref := range doc.widgetRefs {
			fields[i] = ref
		}
		acroFormRef, err := doc.tab.Put(pdf.Dict{{"Fields", fields}})
		if err != nil {
			return err
		}
		catalog.AcroForm = acroFormRef
	}
	if err := doc.tab.Bind(doc.catalogRef, catalog.ToDict()); err != nil {
		return err
	}
	if err := doc.tab.Bind(doc.infoRef, doc.info.ToDict()); err != nil {
		return err
	}

	wr := pdf.NewWriter(doc.tab, doc.catalogRef, doc.infoRef, opts)
	return wr.Write(w)
}
