package document

import "go.inkforge.dev/pdf"

// Standard paper sizes, in PDF points (1/72 inch).
var (
	A4     = pdf.Rectangle{URx: 595.276, URy: 841.890}
	A5     = pdf.Rectangle{URx: 420.945, URy: 595.276}
	Letter = pdf.Rectangle{URx: 612, URy: 792}
	Legal  = pdf.Rectangle{URx: 612, URy: 1008}
)
