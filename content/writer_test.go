package content

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.inkforge.dev/pdf"
	"go.inkforge.dev/pdf/color"
)

func TestPushPop(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineWidth(2)
	w.PushGraphicsState()
	w.SetLineWidth(3)
	w.PopGraphicsState()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if w.state.LineWidth != 2 {
		t.Errorf("LineWidth: got %v, want 2", w.state.LineWidth)
	}
	commands := strings.Fields(buf.String())
	expected := []string{"2", "w", "q", "3", "w", "Q"}
	if d := cmp.Diff(commands, expected); d != "" {
		t.Errorf("commands: %s", d)
	}
}

func TestRepeatedSettersSuppressed(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineWidth(2)
	w.SetLineWidth(2)
	w.SetLineCap(LineCapRound)
	w.SetLineCap(LineCapRound)
	w.SetLineJoin(LineJoinBevel)
	w.SetLineJoin(LineJoinBevel)
	w.SetDashPattern([]float64{3, 1}, 0)
	w.SetDashPattern([]float64{3, 1}, 0)
	black := color.Gray(0)
	w.SetStrokeColor(black)
	w.SetStrokeColor(black)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	commands := strings.Fields(buf.String())
	expected := []string{
		"2", "w",
		"1", "J",
		"2", "j",
		"[3", "1]", "0", "d",
		"0", "G",
	}
	if d := cmp.Diff(commands, expected); d != "" {
		t.Errorf("commands: %s", d)
	}
}

func TestSettersReemitOnChange(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetLineWidth(2)
	w.SetLineWidth(3)
	w.SetStrokeColor(color.Gray(0))
	w.SetStrokeColor(color.RGB(1, 0, 0))
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	commands := strings.Fields(buf.String())
	expected := []string{"2", "w", "3", "w", "0", "G", "1", "0", "0", "RG"}
	if d := cmp.Diff(commands, expected); d != "" {
		t.Errorf("commands: %s", d)
	}
}

func TestPushPopUnbalanced(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.PopGraphicsState()
	if w.Err == nil {
		t.Fatal("expected error")
	}
}

func TestWriterCTM(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Transform(Rotate(math.Pi / 2))
	w.Transform(Translate(10, 20))
	x, y := w.state.CTM[4], w.state.CTM[5]
	if math.Abs(x-(-20)) > 1e-6 || math.Abs(y-10) > 1e-6 {
		t.Errorf("CTM translation: got %v, %v, want -20, 10", x, y)
	}
}

func TestTextShowRequiresFont(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.BeginText()
	w.TextShow("hi")
	if w.Err == nil {
		t.Fatal("expected ErrMissingFont")
	}
}

func TestTextShowRequiresTextObject(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.TextShow("hi")
	if w.Err == nil {
		t.Fatal("expected ErrTextModeViolation")
	}
}

func TestPaintRequiresPath(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Stroke()
	if w.Err == nil {
		t.Fatal("expected ErrPathState")
	}
}

type stubXObject struct{ name pdf.Name }

func (o stubXObject) ResourceName() pdf.Name { return o.name }

func TestDrawXObject(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.DrawXObject(stubXObject{name: "Im1"})
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if got := buf.String(); got != "/Im1 Do\n" {
		t.Errorf("got %q", got)
	}
}

func TestClipRequiresPath(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Clip()
	if w.Err == nil {
		t.Fatal("expected ErrPathState")
	}
}

func TestClipThenEndPath(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Rectangle(0, 0, 10, 10)
	w.Clip()
	w.EndPath()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	commands := strings.Fields(buf.String())
	expected := []string{"0", "0", "10", "10", "re", "W", "n"}
	if d := cmp.Diff(commands, expected); d != "" {
		t.Errorf("commands: %s", d)
	}
}

func TestSetExtGStateSuppressesRepeat(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetExtGState("GS1")
	w.SetExtGState("GS1")
	w.SetExtGState("GS2")
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	commands := strings.Fields(buf.String())
	expected := []string{"/GS1", "gs", "/GS2", "gs"}
	if d := cmp.Diff(commands, expected); d != "" {
		t.Errorf("commands: %s", d)
	}
}

func TestRectangleFillRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Rectangle(0, 0, 100, 50)
	w.Fill()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	got := buf.String()
	if !strings.Contains(got, "re\n") || !strings.Contains(got, "f\n") {
		t.Errorf("got %q", got)
	}
}
