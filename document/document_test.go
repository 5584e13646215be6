package document

import (
	"bytes"
	"strings"
	"testing"

	"go.inkforge.dev/pdf"
	"go.inkforge.dev/pdf/content"
	"go.inkforge.dev/pdf/font"
	"go.inkforge.dev/pdf/font/standard"
	"go.inkforge.dev/pdf/image"
	"go.inkforge.dev/pdf/metadata"
)

func TestEmptyPageRoundTrip(t *testing.T) {
	doc := Create(pdf.V1_7, A4)
	doc.AddPage()

	var buf bytes.Buffer
	if err := doc.Save(&buf, pdf.WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-1.7\n%") {
		t.Errorf("missing header, got %q", out[:20])
	}
	if !strings.Contains(out, "/Type/Page") && !strings.Contains(out, "/Type /Page") {
		// Dict encoding format isn't pinned down here; just check the page
		// made it into the object graph at all.
		if !strings.Contains(out, "Page") {
			t.Errorf("page dict not found in output")
		}
	}
}

func TestHelloTextPage(t *testing.T) {
	doc := Create(pdf.V1_7, A4)
	page := doc.AddPage()

	ref, err := page.AddFont(font.NewStandard(standard.Helvetica))
	if err != nil {
		t.Fatal(err)
	}

	page.BeginText()
	page.TextSetFont(ref, 24)
	page.TextMoveTo(72, 720)
	page.TextShow("Hello, world!")
	page.EndText()
	if page.Err != nil {
		t.Fatal(page.Err)
	}

	// Content streams are Flate-compressed once Save runs, so check the
	// operator stream before that happens rather than scanning the
	// serialized file for the literal text.
	if !strings.Contains(page.buf.String(), "Hello, world!") {
		t.Error("expected the shown text in the uncompressed content stream")
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf, pdf.WriterOptions{}); err != nil {
		t.Fatal(err)
	}
}

func TestFontDeduplicationAcrossPages(t *testing.T) {
	doc := Create(pdf.V1_7, A4)
	p1 := doc.AddPage()
	p2 := doc.AddPage()

	ref1, err := p1.AddFont(font.NewStandard(standard.Helvetica))
	if err != nil {
		t.Fatal(err)
	}
	ref2, err := p2.AddFont(font.NewStandard(standard.Helvetica))
	if err != nil {
		t.Fatal(err)
	}
	if ref1.Dict != ref2.Dict {
		t.Errorf("expected the same font object across pages, got %v and %v", ref1.Dict, ref2.Dict)
	}
}

func TestImageDrawRoundTrip(t *testing.T) {
	doc := Create(pdf.V1_7, A4)
	page := doc.AddPage()

	desc := &image.Descriptor{
		Width: 2, Height: 2,
		ColorSpace:       image.DeviceRGB,
		BitsPerComponent: 8,
		Data:             []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 255, 255, 255},
	}
	ref, err := page.AddImage(desc, nil)
	if err != nil {
		t.Fatal(err)
	}

	page.PushGraphicsState()
	page.Transform(content.Scale(100, 100))
	page.DrawXObject(ref)
	page.PopGraphicsState()
	if page.Err != nil {
		t.Fatal(page.Err)
	}

	if len(page.Resources.XObjects) != 1 {
		t.Errorf("expected exactly one registered XObject, got %d", len(page.Resources.XObjects))
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf, pdf.WriterOptions{}); err != nil {
		t.Fatal(err)
	}
}

func TestOpacityRegistersExtGStateOnce(t *testing.T) {
	doc := Create(pdf.V1_7, A4)
	page := doc.AddPage()

	if err := page.SetOpacity(0.5, 1); err != nil {
		t.Fatal(err)
	}
	if err := page.SetOpacity(0.5, 1); err != nil {
		t.Fatal(err)
	}
	if page.Err != nil {
		t.Fatal(page.Err)
	}
	if len(page.Resources.ExtGStates) != 1 {
		t.Errorf("expected 1 registered ExtGState, got %d", len(page.Resources.ExtGStates))
	}
	if !strings.Contains(page.buf.String(), "gs\n") {
		t.Error("expected a gs operator in the content stream")
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf, pdf.WriterOptions{}); err != nil {
		t.Fatal(err)
	}
}

func TestAddColorSpaceRegistersResource(t *testing.T) {
	doc := Create(pdf.V1_7, A4)
	page := doc.AddPage()

	name, err := page.AddColorSpace(pdf.Array{
		pdf.Name("Separation"),
		pdf.Name("Spot"),
		pdf.Name("DeviceCMYK"),
	})
	if err != nil {
		t.Fatal(err)
	}
	page.SetFillColorSpace(name)
	page.SetFillColorN(0.2, 0.4, 0.1, 0)
	if page.Err != nil {
		t.Fatal(page.Err)
	}
	if len(page.Resources.ColorSpaces) != 1 {
		t.Errorf("expected 1 registered color space, got %d", len(page.Resources.ColorSpaces))
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf, pdf.WriterOptions{}); err != nil {
		t.Fatal(err)
	}
}

func TestMetadataStreamLinkedFromCatalog(t *testing.T) {
	doc := Create(pdf.V1_7, A4)
	doc.AddPage()
	doc.SetMetadata(metadata.Properties{Title: "Report"}, false)

	var buf bytes.Buffer
	if err := doc.Save(&buf, pdf.WriterOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "/Metadata") {
		t.Error("expected a /Metadata entry in the catalog")
	}
}

func TestSaveDeterministic(t *testing.T) {
	build := func() []byte {
		doc := Create(pdf.V1_7, A4)
		doc.AddPage()
		var buf bytes.Buffer
		if err := doc.Save(&buf, pdf.WriterOptions{}); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	a := build()
	b := build()
	if !bytes.Equal(a, b) {
		t.Error("expected byte-identical output for identical input")
	}
}
