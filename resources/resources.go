// Package resources builds a page's /Resources dictionary: the locally
// scoped names a content stream uses to refer to fonts, images, graphics
// states and color spaces.
package resources

import (
	"fmt"

	"go.inkforge.dev/pdf"
)

// Named is anything that can be installed as a page resource: it knows its
// own locally-unique name and the indirect reference to its dictionary.
type Named interface {
	ResourceName() pdf.Name
	ResourceRef() pdf.Reference
}

// Catalog collects the resources a single page (or Form XObject) uses,
// keyed by the four resource dictionaries content streams can reference.
// Each subdictionary is a pdf.Dict rather than a plain map so that
// resource names appear in the order they were first added, matching
// the deterministic-output guarantee the rest of the object model gives.
type Catalog struct {
	Fonts       pdf.Dict
	XObjects    pdf.Dict
	ExtGStates  pdf.Dict
	ColorSpaces pdf.Dict

	nextXObject int
	nextGState  int
	nextSpace   int

	seen map[pdf.Reference]pdf.Name
}

// NewCatalog returns an empty resource catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		seen: make(map[pdf.Reference]pdf.Name),
	}
}

// AddFont installs name/ref in the /Font subdictionary. Callers (the font
// manager) already dedupe by font identity, so this just records the
// mapping; calling it twice with the same name and ref is a no-op.
func (c *Catalog) AddFont(name pdf.Name, ref pdf.Reference) {
	c.Fonts.Set(name, ref)
}

// AddXObject installs ref under a fresh /XObject name and returns it,
// reusing the existing name if ref was already added.
func (c *Catalog) AddXObject(ref pdf.Reference) pdf.Name {
	if name, ok := c.seen[ref]; ok {
		return name
	}
	c.nextXObject++
	name := pdf.Name(fmt.Sprintf("Im%d", c.nextXObject))
	c.XObjects.Set(name, ref)
	c.seen[ref] = name
	return name
}

// AddExtGState installs ref under a fresh /ExtGState name and returns it,
// reusing the existing name if ref was already added.
func (c *Catalog) AddExtGState(ref pdf.Reference) pdf.Name {
	if name, ok := c.seen[ref]; ok {
		return name
	}
	c.nextGState++
	name := pdf.Name(fmt.Sprintf("GS%d", c.nextGState))
	c.ExtGStates.Set(name, ref)
	c.seen[ref] = name
	return name
}

// AddColorSpace installs ref under a fresh /ColorSpace name and returns
// it, reusing the existing name if ref was already added.
func (c *Catalog) AddColorSpace(ref pdf.Reference) pdf.Name {
	if name, ok := c.seen[ref]; ok {
		return name
	}
	c.nextSpace++
	name := pdf.Name(fmt.Sprintf("CS%d", c.nextSpace))
	c.ColorSpaces.Set(name, ref)
	c.seen[ref] = name
	return name
}

// ToDict builds the /Resources dictionary, omitting any subdictionary
// that has no entries.
func (c *Catalog) ToDict() pdf.Dict {
	d := pdf.Dict{}
	if len(c.Fonts) > 0 {
		d.Set("Font", c.Fonts)
	}
	if len(c.XObjects) > 0 {
		d.Set("XObject", c.XObjects)
	}
	if len(c.ExtGStates) > 0 {
		d.Set("ExtGState", c.ExtGStates)
	}
	if len(c.ColorSpaces) > 0 {
		d.Set("ColorSpace", c.ColorSpaces)
	}
	return d
}
