package content

import "strings"

// DrawWrappedText lays out text word-wrapped to width and paints it
// starting at (x, y), one line per leading units of descent, using
// WrapText's greedy line breaks. It opens and closes its own text object
// and restores the word spacing set beforehand once the last line is
// painted, so callers don't need to bracket the call with
// BeginText/EndText themselves.
func (p *Writer) DrawWrappedText(text string, fnt Font, size float64, x, y, width, leading float64, align Alignment) {
	if p.Err != nil {
		return
	}
	lines := WrapText(text, width, align, func(s string) float64 {
		return fnt.Width(s) * size
	})
	if len(lines) == 0 {
		return
	}

	prevSpacing := p.state.TextWordSpacing
	p.BeginText()
	p.TextSetFont(fnt, size)
	prevOffset := 0.0
	for i, line := range lines {
		if i == 0 {
			p.TextMoveTo(x+line.XOffset, y)
		} else {
			p.TextMoveTo(line.XOffset-prevOffset, -leading)
		}
		prevOffset = line.XOffset
		p.TextSetWordSpacing(line.WordSpacing)
		p.TextShow(line.Text)
	}
	p.TextSetWordSpacing(prevSpacing)
	p.EndText()
}

// Alignment selects how WrapText distributes space on each line.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// Line is one laid-out line of wrapped text, with the x-offset and extra
// inter-word spacing needed to honor its Alignment.
type Line struct {
	Text       string
	XOffset    float64
	WordSpacing float64
}

// WrapText breaks text into lines that fit within width, measuring each
// word with measure (a function returning the width of a string at the
// given font and size, e.g. a [Font]'s Width method scaled by size). It
// uses a simple greedy line-break: words are added to the current line
// until the next one would overflow, then a new line starts. This does
// not attempt the paragraph-wide optimum a Knuth-Plass break would find,
// trading a locally-ragged right margin for a straightforward algorithm.
func WrapText(text string, width float64, align Alignment, measure func(string) float64) []Line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	spaceWidth := measure(" ")

	var lines []Line
	var cur []string
	var curWidth float64
	flush := func() {
		if len(cur) == 0 {
			return
		}
		lineText := strings.Join(cur, " ")
		line := Line{Text: lineText}
		switch align {
		case AlignRight:
			line.XOffset = width - curWidth
		case AlignCenter:
			line.XOffset = (width - curWidth) / 2
		case AlignJustify:
			if len(cur) > 1 {
				slack := width - curWidth
				line.WordSpacing = slack / float64(len(cur)-1)
			}
		}
		lines = append(lines, line)
		cur = nil
		curWidth = 0
	}

	for _, word := range words {
		wWidth := measure(word)
		extra := wWidth
		if len(cur) > 0 {
			extra += spaceWidth
		}
		if len(cur) > 0 && curWidth+extra > width {
			flush()
			extra = wWidth
		}
		cur = append(cur, word)
		curWidth += extra
	}
	flush()

	// The last line of a justified paragraph is conventionally left-aligned,
	// not stretched to fill the width.
	if align == AlignJustify && len(lines) > 0 {
		lines[len(lines)-1].WordSpacing = 0
	}

	return lines
}
