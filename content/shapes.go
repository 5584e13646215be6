package content

import "math"

// kappa is the distance (as a fraction of the radius) from a circle's
// axis point to its Bezier control point that best approximates a
// quarter circle with a single cubic segment.
const kappa = (math.Sqrt2 - 1.0) * 4 / 3

// Circle appends a closed subpath approximating a circle of radius r
// centered at (cx, cy), built from four cubic Bezier segments (operators
// "m"/"c"/"h"). Painting it is left to the caller (Fill, Stroke, ...).
func (p *Writer) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse appends a closed subpath approximating an ellipse with radii rx
// (horizontal) and ry (vertical) centered at (cx, cy), using the same
// four-Bezier construction as Circle.
func (p *Writer) Ellipse(cx, cy, rx, ry float64) {
	if p.Err != nil {
		return
	}
	p.MoveTo(cx+rx, cy)
	p.CurveTo(cx+rx, cy+ry*kappa, cx+rx*kappa, cy+ry, cx, cy+ry)
	p.CurveTo(cx-rx*kappa, cy+ry, cx-rx, cy+ry*kappa, cx-rx, cy)
	p.CurveTo(cx-rx, cy-ry*kappa, cx-rx*kappa, cy-ry, cx, cy-ry)
	p.CurveTo(cx+rx*kappa, cy-ry, cx+rx, cy-ry*kappa, cx+rx, cy)
	p.ClosePath()
}

// RoundedRectangle appends a closed subpath for a rectangle of the given
// width and height with corners rounded to radius, clamped to at most
// half the shorter side so opposite arcs never overlap.
func (p *Writer) RoundedRectangle(x, y, width, height, radius float64) {
	if p.Err != nil {
		return
	}
	if m := math.Min(width, height) / 2; radius > m {
		radius = m
	}
	if radius <= 0 {
		p.Rectangle(x, y, width, height)
		return
	}

	k := radius * kappa
	x0, y0 := x, y
	x1, y1 := x+width, y+height

	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.CurveTo(x1-radius+k, y0, x1, y0+radius-k, x1, y0+radius)
	p.LineTo(x1, y1-radius)
	p.CurveTo(x1, y1-radius+k, x1-radius+k, y1, x1-radius, y1)
	p.LineTo(x0+radius, y1)
	p.CurveTo(x0+radius-k, y1, x0, y1-radius+k, x0, y1-radius)
	p.LineTo(x0, y0+radius)
	p.CurveTo(x0, y0+radius-k, x0+radius-k, y0, x0+radius, y0)
	p.ClosePath()
}

// Polygon appends a closed subpath through the given vertices, given as
// alternating x, y pairs (operators "m"/"l"*/"h"). It is a no-op for
// fewer than 2 points.
func (p *Writer) Polygon(points ...float64) {
	if p.Err != nil {
		return
	}
	if len(points) < 4 || len(points)%2 != 0 {
		return
	}
	p.MoveTo(points[0], points[1])
	for i := 2; i+1 < len(points); i += 2 {
		p.LineTo(points[i], points[i+1])
	}
	p.ClosePath()
}
