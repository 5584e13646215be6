package annotation

import (
	"testing"

	"go.inkforge.dev/pdf"
)

func TestTextToDict(t *testing.T) {
	a := &Text{
		Common: Common{Rect: pdf.Rectangle{LLx: 1, LLy: 2, URx: 3, URy: 4}, Contents: "hi"},
		Open:   true,
		Icon:   IconNote,
	}
	d := a.ToDict()
	if subtype, _ := d.Get("Subtype"); subtype != pdf.Name("Text") {
		t.Errorf("Subtype = %v", subtype)
	}
	if open, _ := d.Get("Open"); open != pdf.Boolean(true) {
		t.Errorf("Open = %v", open)
	}
	if name, _ := d.Get("Name"); name != pdf.Name("Note") {
		t.Errorf("Name = %v", name)
	}
}

func TestLinkToDictURI(t *testing.T) {
	a := &Link{URI: "https://example.com"}
	d := a.ToDict()
	aVal, _ := d.Get("A")
	action, ok := aVal.(pdf.Dict)
	if !ok {
		t.Fatalf("A entry missing or wrong type: %v", aVal)
	}
	uri, _ := action.Get("URI")
	if s, ok := uri.(pdf.String); !ok || string(s.Data) != "https://example.com" {
		t.Errorf("URI = %v", uri)
	}
}

func TestLinkToDictDest(t *testing.T) {
	a := &Link{Dest: pdf.Reference{Number: 7, Generation: 0}}
	d := a.ToDict()
	destVal, _ := d.Get("Dest")
	arr, ok := destVal.(pdf.Array)
	if !ok || len(arr) != 2 {
		t.Fatalf("Dest = %v", destVal)
	}
}

func TestWidgetToDict(t *testing.T) {
	a := &Widget{
		Type:  FieldText,
		Name:  "field1",
		Value: "hello",
	}
	d := a.ToDict()
	if ft, _ := d.Get("FT"); ft != pdf.Name("Tx") {
		t.Errorf("FT = %v", ft)
	}
	if tv, _ := d.Get("T"); tv != pdf.TextString("field1") {
		t.Errorf("T = %v", tv)
	}
}
