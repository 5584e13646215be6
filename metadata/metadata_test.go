package metadata

import (
	"bytes"
	"testing"
	"time"

	"go.inkforge.dev/pdf"
)

func TestBuildContainsProperties(t *testing.T) {
	props := Properties{
		Title:       "Test Document",
		Description: "A document built for a test.",
		Creators:    []string{"Jane Doe"},
		Keywords:    "test, xmp",
		Producer:    "go.inkforge.dev/pdf",
		Created:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	stream, err := Build(props, false)
	if err != nil {
		t.Fatal(err)
	}
	if typ, _ := stream.Dict.Get("Type"); typ != pdf.Name("Metadata") {
		t.Errorf("Type = %v", typ)
	}
	if subtype, _ := stream.Dict.Get("Subtype"); subtype != pdf.Name("XML") {
		t.Errorf("Subtype = %v", subtype)
	}
	for _, want := range []string{"Test Document", "Jane Doe", "test, xmp"} {
		if !bytes.Contains(stream.Data, []byte(want)) {
			t.Errorf("expected packet to contain %q", want)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	stream, err := Build(Properties{}, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(stream.Data) == 0 {
		t.Error("expected a non-empty XMP packet even with no properties set")
	}
}
