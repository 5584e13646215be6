// Package pagetree builds the balanced /Pages tree that indexes a
// document's pages.
package pagetree

import "go.inkforge.dev/pdf"

// fanOut bounds how many kids a single Pages node may have before the
// tree grows another level. PDF viewers that build their page index by
// walking the tree recursively benefit from a bound like this one; it
// keeps any single node's /Kids array from growing linearly with the
// document's page count.
const fanOut = 10

// leaf is one page awaiting assembly into the tree.
type leaf struct {
	ref  pdf.Reference
	dict pdf.Dict
}

// Builder collects page references in order and, once finished, emits the
// /Pages node hierarchy plus the fully-populated page dictionaries
// (including their inherited attributes).
type Builder struct {
	tab   *pdf.Table
	pages []leaf

	// Inheritable holds the attributes every page inherits unless it sets
	// its own (/MediaBox, /Resources, /Rotate, /CropBox). These are
	// written onto each leaf page dictionary directly: PDF allows leaving
	// them on the intermediate nodes for viewers to inherit, but writing
	// them explicitly on every leaf avoids relying on a reader correctly
	// implementing inheritance.
	Inheritable pdf.Dict
}

// NewBuilder returns an empty page tree builder.
func NewBuilder(tab *pdf.Table) *Builder {
	return &Builder{tab: tab, Inheritable: pdf.Dict{}}
}

// AddPage appends a page, identified by its already-allocated reference
// and its dictionary (missing /Type and /Parent, which Build fills in).
func (b *Builder) AddPage(ref pdf.Reference, dict pdf.Dict) {
	b.pages = append(b.pages, leaf{ref: ref, dict: dict})
}

// Len returns the number of pages added so far.
func (b *Builder) Len() int {
	return len(b.pages)
}

// Build allocates and binds the /Pages node hierarchy, fills in every
// page's /Type, /Parent and inherited attributes, and returns the
// reference to the root /Pages node.
func (b *Builder) Build() (pdf.Reference, error) {
	root := b.tab.Alloc()

	if len(b.pages) == 0 {
		err := b.tab.Bind(root, pdf.Dict{
			{"Type", pdf.Name("Pages")},
			{"Kids", pdf.Array{}},
			{"Count", pdf.Integer(0)},
		})
		return root, err
	}

	for _, p := range b.pages {
		for _, e := range b.Inheritable {
			if _, ok := p.dict.Get(e.Key); !ok {
				p.dict.Set(e.Key, e.Value)
			}
		}
	}

	if err := b.buildLevel(root, pdf.Reference{}, b.pages); err != nil {
		return pdf.Reference{}, err
	}
	return root, nil
}

// buildLevel binds the /Pages node at ref with kids drawn from leaves,
// setting /Parent to parent (the zero Reference for the tree root, which
// omits the entry), and recursing into further /Pages nodes when leaves
// exceeds fanOut.
func (b *Builder) buildLevel(ref, parent pdf.Reference, leaves []leaf) error {
	node := pdf.Dict{{"Type", pdf.Name("Pages")}}
	if !parent.IsZero() {
		node.Set("Parent", parent)
	}

	if len(leaves) <= fanOut {
		kids := make(pdf.Array, len(leaves))
		for i, p := range leaves {
			p.dict.Set("Type", pdf.Name("Page"))
			p.dict.Set("Parent", ref)
			if err := b.tab.Bind(p.ref, p.dict); err != nil {
				return err
			}
			kids[i] = p.ref
		}
		node.Set("Kids", kids)
		node.Set("Count", pdf.Integer(len(leaves)))
		return b.tab.Bind(ref, node)
	}

	// Each child subtree holds up to size leaves, the smallest power of
	// fanOut that leaves this node with at most fanOut kids.
	size := fanOut
	for size*fanOut < len(leaves) {
		size *= fanOut
	}

	var kids pdf.Array
	count := 0
	for i := 0; i < len(leaves); i += size {
		end := i + size
		if end > len(leaves) {
			end = len(leaves)
		}
		childRef := b.tab.Alloc()
		if err := b.buildLevel(childRef, ref, leaves[i:end]); err != nil {
			return err
		}
		kids = append(kids, childRef)
		count += end - i
	}
	node.Set("Kids", kids)
	node.Set("Count", pdf.Integer(count))
	return b.tab.Bind(ref, node)
}
