// Package pdf implements the low-level object model and byte-exact
// serializer for producing PDF files.
//
// This package treats a PDF file as a flat table of indirect objects,
// written out in a single deterministic pass:
//
//	tab := pdf.NewTable(pdf.V1_7)
//	ref := tab.Alloc()
//	tab.Bind(ref, pdf.Dict{{"Type", pdf.Name("Catalog")}})
//	...
//	w := pdf.NewWriter(tab, ref, pdf.Reference{}, pdf.WriterOptions{})
//	if err := w.Write(out); err != nil {
//	    log.Fatal(err)
//	}
//
// The higher-level page, font, and resource APIs for constructing a
// document live in the sibling packages content, resources, font,
// pagetree and document; this package only knows about the PDF value
// kinds and how to lay out object bodies, the cross-reference
// table and the trailer.
//
// All of the following implement the [Object] interface:
//
//	Array
//	Boolean
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	Stream
//	String
//
// Reading or modifying existing PDF files is out of scope: Table only
// ever grows, and Writer only ever appends.
package pdf
