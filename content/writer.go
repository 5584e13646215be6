package content

import (
	"bytes"
	"fmt"
	"io"

	"go.inkforge.dev/pdf"
	"go.inkforge.dev/pdf/color"
	"go.inkforge.dev/pdf/internal/float"
)

// LineCap is the value of the line cap style operand of the "J" operator.
type LineCap int

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the value of the line join style operand of the "j" operator.
type LineJoin int

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// TextRenderingMode is the operand of the "Tr" operator.
type TextRenderingMode int

const (
	TextRenderingModeFill TextRenderingMode = iota
	TextRenderingModeStroke
	TextRenderingModeFillStroke
	TextRenderingModeInvisible
	TextRenderingModeFillClip
	TextRenderingModeStrokeClip
	TextRenderingModeFillStrokeClip
	TextRenderingModeClip
)

// Font is the minimal capability a content stream needs from a font to
// select it with Tf and measure text for layout: a resource name and the
// advance width of a string, which DrawWrappedText uses to break lines.
type Font interface {
	ResourceName() pdf.Name
	Width(text string) float64 // in text space units, at size 1
}

// stateBits records which of the diffable graphics-state parameters below
// have been set at least once in the current q/Q scope, so the first call
// to a setter always emits its operator even when the zero value happens
// to match the value being set.
type stateBits uint8

const (
	stateLineWidth stateBits = 1 << iota
	stateLineCap
	stateLineJoin
	stateMiterLimit
	stateDash
	stateStrokeColor
	stateFillColor
	stateExtGState
)

// state holds the graphics and text state that q/Q save and restore.
type state struct {
	CTM                  Matrix
	LineWidth            float64
	LineCap              LineCap
	LineJoin             LineJoin
	MiterLimit           float64
	DashPattern          []float64
	DashPhase            float64
	StrokeColor          color.Color
	FillColor            color.Color

	TextCharacterSpacing float64
	TextWordSpacing      float64
	TextHorizontalScale  float64
	TextLeading          float64
	TextFont             Font
	TextFontSize         float64
	TextRenderingMode    TextRenderingMode
	TextRise             float64

	ExtGState pdf.Name
}

func newState() state {
	return state{
		CTM:                 Identity,
		MiterLimit:          10,
		TextHorizontalScale: 100,
	}
}

// mode tracks whether the writer is between BT and ET, which is
// not part of the saved/restored graphics state.
type mode int

const (
	modePage mode = iota
	modeText
)

// Writer builds a PDF content stream by emitting operators directly to an
// underlying writer. Every method appends one operator (or does nothing)
// and, on failure, records the error in Err; once Err is set all further
// calls are no-ops. Callers should check Err after building a stream.
type Writer struct {
	Err error

	w        io.Writer
	state    state
	hasState stateBits
	stack    []state
	bitStack []stateBits
	mode     mode
	hasPath  bool
}

// NewWriter creates a Writer that appends operators to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, state: newState()}
}

func (p *Writer) write(format string, args ...interface{}) {
	if p.Err != nil {
		return
	}
	_, err := fmt.Fprintf(p.w, format, args...)
	if err != nil {
		p.Err = err
	}
}

// PushGraphicsState saves the current graphics state (operator "q").
func (p *Writer) PushGraphicsState() {
	if p.Err != nil {
		return
	}
	p.stack = append(p.stack, p.state)
	p.bitStack = append(p.bitStack, p.hasState)
	p.write("q\n")
}

// PopGraphicsState restores the most recently saved graphics state
// (operator "Q").
func (p *Writer) PopGraphicsState() {
	if p.Err != nil {
		return
	}
	if len(p.stack) == 0 {
		p.Err = pdf.ErrUnbalancedStack
		return
	}
	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.hasState = p.bitStack[len(p.bitStack)-1]
	p.bitStack = p.bitStack[:len(p.bitStack)-1]
	p.write("Q\n")
}

// Transform concatenates m into the current transformation matrix
// (operator "cm").
func (p *Writer) Transform(m Matrix) {
	if p.Err != nil {
		return
	}
	p.state.CTM = m.Mul(p.state.CTM)
	p.write("%s %s %s %s %s %s cm\n", num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
}

// SetLineWidth sets the line width (operator "w"). A call that repeats the
// current line width is a no-op: it doesn't touch the content stream.
func (p *Writer) SetLineWidth(width float64) {
	if p.Err != nil || (p.hasState&stateLineWidth != 0 && p.state.LineWidth == width) {
		return
	}
	p.state.LineWidth = width
	p.hasState |= stateLineWidth
	p.write("%s w\n", num(width))
}

// SetLineCap sets the line cap style (operator "J"). A call that repeats
// the current line cap is a no-op.
func (p *Writer) SetLineCap(cap LineCap) {
	if p.Err != nil || (p.hasState&stateLineCap != 0 && p.state.LineCap == cap) {
		return
	}
	p.state.LineCap = cap
	p.hasState |= stateLineCap
	p.write("%d J\n", cap)
}

// SetLineJoin sets the line join style (operator "j"). A call that repeats
// the current line join is a no-op.
func (p *Writer) SetLineJoin(join LineJoin) {
	if p.Err != nil || (p.hasState&stateLineJoin != 0 && p.state.LineJoin == join) {
		return
	}
	p.state.LineJoin = join
	p.hasState |= stateLineJoin
	p.write("%d j\n", join)
}

// SetMiterLimit sets the miter limit (operator "M"). A call that repeats
// the current miter limit is a no-op.
func (p *Writer) SetMiterLimit(limit float64) {
	if p.Err != nil || (p.hasState&stateMiterLimit != 0 && p.state.MiterLimit == limit) {
		return
	}
	p.state.MiterLimit = limit
	p.hasState |= stateMiterLimit
	p.write("%s M\n", num(limit))
}

// SetDashPattern sets the dash pattern (operator "d"). A call that repeats
// the current pattern and phase is a no-op.
func (p *Writer) SetDashPattern(pattern []float64, phase float64) {
	if p.Err != nil {
		return
	}
	if p.hasState&stateDash != 0 && p.state.DashPhase == phase && slicesEqual(p.state.DashPattern, pattern) {
		return
	}
	p.state.DashPattern = pattern
	p.state.DashPhase = phase
	p.hasState |= stateDash
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range pattern {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(num(v))
	}
	buf.WriteByte(']')
	p.write("%s %s d\n", buf.String(), num(phase))
}

// SetStrokeColor sets the current stroke color. A call that repeats the
// current stroke color is a no-op.
func (p *Writer) SetStrokeColor(c color.Color) {
	if p.Err != nil {
		return
	}
	if p.hasState&stateStrokeColor != 0 && p.state.StrokeColor != nil && p.state.StrokeColor.Equal(c) {
		return
	}
	p.state.StrokeColor = c
	p.hasState |= stateStrokeColor
	p.Err = c.SetStroke(p.w)
}

// SetFillColor sets the current fill color. A call that repeats the
// current fill color is a no-op.
func (p *Writer) SetFillColor(c color.Color) {
	if p.Err != nil {
		return
	}
	if p.hasState&stateFillColor != 0 && p.state.FillColor != nil && p.state.FillColor.Equal(c) {
		return
	}
	p.state.FillColor = c
	p.hasState |= stateFillColor
	p.Err = c.SetFill(p.w)
}

func slicesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SetExtGState selects name, the resource name of a graphics state
// parameter dictionary previously installed via
// [go.inkforge.dev/pdf/resources.Catalog.AddExtGState] (operator "gs").
// This is how opacity, blend mode and soft mask are set, since those
// parameters live in a separate object rather than being set directly by
// a content-stream operator. A call that repeats the current ExtGState
// name is a no-op.
func (p *Writer) SetExtGState(name pdf.Name) {
	if p.Err != nil || (p.hasState&stateExtGState != 0 && p.state.ExtGState == name) {
		return
	}
	p.state.ExtGState = name
	p.hasState |= stateExtGState
	var buf bytes.Buffer
	if err := name.Encode(&buf); err != nil {
		p.Err = err
		return
	}
	p.write("%s gs\n", buf.String())
}

// Clip marks the current path to be intersected with the current clipping
// path using the nonzero winding rule (operator "W"). The clip only takes
// effect once a path-painting operator (Stroke, Fill, EndPath, ...) is
// called next; most callers follow Clip with EndPath to clip without
// painting.
func (p *Writer) Clip() {
	p.checkPath()
	p.write("W\n")
}

// ClipEvenOdd marks the current path to be intersected with the current
// clipping path using the even-odd rule (operator "W*"). See Clip.
func (p *Writer) ClipEvenOdd() {
	p.checkPath()
	p.write("W*\n")
}

// SetFillColorSpace selects name, a resource name previously installed via
// [go.inkforge.dev/pdf/resources.Catalog.AddColorSpace], as the current
// fill color space (operator "cs"). Use this for color spaces the device
// spaces in package color can't express (Separation, ICCBased, Indexed,
// ...); follow it with SetFillColorN to set the actual color value.
func (p *Writer) SetFillColorSpace(name pdf.Name) {
	p.writeColorSpaceOp(name, "cs")
}

// SetStrokeColorSpace is the stroke-color counterpart of SetFillColorSpace
// (operator "CS").
func (p *Writer) SetStrokeColorSpace(name pdf.Name) {
	p.writeColorSpaceOp(name, "CS")
}

func (p *Writer) writeColorSpaceOp(name pdf.Name, op string) {
	if p.Err != nil {
		return
	}
	var buf bytes.Buffer
	if err := name.Encode(&buf); err != nil {
		p.Err = err
		return
	}
	p.write("%s %s\n", buf.String(), op)
}

// SetFillColorN sets the fill color in the color space last selected with
// SetFillColorSpace, as one component per dimension of that space
// (operator "scn").
func (p *Writer) SetFillColorN(components ...float64) {
	p.writeColorN(components, "scn")
}

// SetStrokeColorN is the stroke-color counterpart of SetFillColorN
// (operator "SCN").
func (p *Writer) SetStrokeColorN(components ...float64) {
	p.writeColorN(components, "SCN")
}

func (p *Writer) writeColorN(components []float64, op string) {
	if p.Err != nil {
		return
	}
	var buf bytes.Buffer
	for i, c := range components {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(num(c))
	}
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
	buf.WriteString(op)
	buf.WriteByte('\n')
	p.write("%s", buf.String())
}

// MoveTo starts a new subpath at (x, y) (operator "m").
func (p *Writer) MoveTo(x, y float64) {
	p.hasPath = true
	p.write("%s %s m\n", num(x), num(y))
}

// LineTo appends a straight line segment to (x, y) (operator "l").
func (p *Writer) LineTo(x, y float64) {
	p.checkPath()
	p.write("%s %s l\n", num(x), num(y))
}

// CurveTo appends a cubic Bezier segment (operator "c").
func (p *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.checkPath()
	p.write("%s %s %s %s %s %s c\n", num(x1), num(y1), num(x2), num(y2), num(x3), num(y3))
}

// ClosePath closes the current subpath (operator "h").
func (p *Writer) ClosePath() {
	p.checkPath()
	p.write("h\n")
}

// Rectangle appends a rectangle subpath (operator "re").
func (p *Writer) Rectangle(x, y, width, height float64) {
	p.hasPath = true
	p.write("%s %s %s %s re\n", num(x), num(y), num(width), num(height))
}

func (p *Writer) checkPath() {
	if p.Err != nil {
		return
	}
	if p.mode == modeText {
		p.Err = pdf.ErrTextModeViolation
		return
	}
	if !p.hasPath {
		p.Err = pdf.ErrPathState
	}
}

// Stroke paints the current path with the stroke color (operator "S").
func (p *Writer) Stroke() {
	p.checkPath()
	p.write("S\n")
	p.hasPath = false
}

// Fill paints the current path with the fill color, nonzero winding rule
// (operator "f").
func (p *Writer) Fill() {
	p.checkPath()
	p.write("f\n")
	p.hasPath = false
}

// FillAndStroke fills then strokes the current path (operator "B").
func (p *Writer) FillAndStroke() {
	p.checkPath()
	p.write("B\n")
	p.hasPath = false
}

// EndPath discards the current path without painting it (operator "n").
func (p *Writer) EndPath() {
	p.write("n\n")
	p.hasPath = false
}

// XObject is the minimal capability a content stream needs to paint an
// external object (an image or a form) with Do: a resource name.
type XObject interface {
	ResourceName() pdf.Name
}

// DrawXObject paints the given XObject at the origin of the current
// coordinate system, scaled by the CTM (operator "Do"). Callers typically
// wrap this in PushGraphicsState/Transform/PopGraphicsState to place and
// size the result.
func (p *Writer) DrawXObject(obj XObject) {
	if p.Err != nil {
		return
	}
	var buf bytes.Buffer
	if err := obj.ResourceName().Encode(&buf); err != nil {
		p.Err = err
		return
	}
	p.write("%s Do\n", buf.String())
}

// BeginText starts a text object (operator "BT").
func (p *Writer) BeginText() {
	if p.Err != nil {
		return
	}
	p.mode = modeText
	p.write("BT\n")
}

// EndText ends a text object (operator "ET").
func (p *Writer) EndText() {
	if p.Err != nil {
		return
	}
	p.mode = modePage
	p.write("ET\n")
}

// TextSetFont selects font and size (operator "Tf").
func (p *Writer) TextSetFont(font Font, size float64) {
	p.state.TextFont = font
	p.state.TextFontSize = size
	if p.Err != nil {
		return
	}
	var buf bytes.Buffer
	if err := font.ResourceName().Encode(&buf); err != nil {
		p.Err = err
		return
	}
	p.write("%s %s Tf\n", buf.String(), num(size))
}

// TextMoveTo moves to the start of the next line, offset by (tx, ty) from
// the start of the current line (operator "Td").
func (p *Writer) TextMoveTo(tx, ty float64) {
	p.write("%s %s Td\n", num(tx), num(ty))
}

// TextShow paints the given text at the current text position (operator
// "Tj"). It returns an error via Err if called outside a text object or
// before a font has been selected.
func (p *Writer) TextShow(text string) {
	if p.Err != nil {
		return
	}
	if p.mode != modeText {
		p.Err = pdf.ErrTextModeViolation
		return
	}
	if p.state.TextFont == nil {
		p.Err = pdf.ErrMissingFont
		return
	}
	s := pdf.NewString(text)
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		p.Err = err
		return
	}
	p.write("%s Tj\n", buf.String())
}

// TextSetCharacterSpacing sets the character spacing (operator "Tc").
func (p *Writer) TextSetCharacterSpacing(tc float64) {
	p.state.TextCharacterSpacing = tc
	p.write("%s Tc\n", num(tc))
}

// TextSetWordSpacing sets the word spacing (operator "Tw").
func (p *Writer) TextSetWordSpacing(tw float64) {
	p.state.TextWordSpacing = tw
	p.write("%s Tw\n", num(tw))
}

// TextSetHorizontalScaling sets the horizontal scaling, as a percentage
// (operator "Tz").
func (p *Writer) TextSetHorizontalScaling(scale float64) {
	p.state.TextHorizontalScale = scale
	p.write("%s Tz\n", num(scale))
}

// TextSetLeading sets the leading (operator "TL").
func (p *Writer) TextSetLeading(leading float64) {
	p.state.TextLeading = leading
	p.write("%s TL\n", num(leading))
}

// TextSetRenderingMode sets the text rendering mode (operator "Tr").
func (p *Writer) TextSetRenderingMode(mode TextRenderingMode) {
	p.state.TextRenderingMode = mode
	p.write("%d Tr\n", mode)
}

// TextSetRise sets the text rise (operator "Ts").
func (p *Writer) TextSetRise(rise float64) {
	p.state.TextRise = rise
	p.write("%s Ts\n", num(rise))
}

// TextNextLine moves to the start of the next line, using the current
// leading (operator "T*").
func (p *Writer) TextNextLine() {
	p.write("T*\n")
}

func num(v float64) string {
	return float.Format(v, 4)
}
