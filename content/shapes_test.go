package content

import (
	"bytes"
	"strings"
	"testing"
)

func TestCircleEmitsFourCurves(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Circle(50, 50, 10)
	w.Fill()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	out := buf.String()
	if got := strings.Count(out, " c\n"); got != 4 {
		t.Errorf("expected 4 curve operators, got %d in %q", got, out)
	}
	if !strings.HasPrefix(out, "60 50 m\n") {
		t.Errorf("expected the path to start at (cx+r, cy), got %q", out)
	}
	if !strings.Contains(out, "h\n") {
		t.Error("expected the path to be closed")
	}
}

func TestRoundedRectangleClampsRadius(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.RoundedRectangle(0, 0, 20, 10, 100)
	w.Stroke()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if got := strings.Count(buf.String(), " c\n"); got != 4 {
		t.Errorf("expected 4 curve operators for the clamped corners, got %d", got)
	}
}

func TestRoundedRectangleZeroRadiusIsPlainRectangle(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.RoundedRectangle(0, 0, 20, 10, 0)
	w.Fill()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if got := buf.String(); !strings.Contains(got, " re\n") {
		t.Errorf("expected a plain re operator, got %q", got)
	}
}

func TestPolygonEmitsLineTosAndCloses(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Polygon(0, 0, 10, 0, 10, 10, 0, 10)
	w.Fill()
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	out := buf.String()
	if got := strings.Count(out, " l\n"); got != 3 {
		t.Errorf("expected 3 line segments after the initial moveto, got %d in %q", got, out)
	}
	if !strings.Contains(out, "h\n") {
		t.Error("expected the polygon to be closed")
	}
}

func TestPolygonTooFewPointsIsNoop(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.Polygon(0, 0)
	if w.Err != nil {
		t.Fatal(w.Err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no operators, got %q", buf.String())
	}
}
