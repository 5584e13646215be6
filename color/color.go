// Package color implements the device color spaces a content stream can
// select with rg/RG, k/K, and g/G.
package color

import (
	"fmt"
	"io"

	"go.inkforge.dev/pdf/internal/float"
)

// Color is a device color that can be selected as the current stroke or
// fill color in a content stream.
type Color interface {
	SetStroke(w io.Writer) error
	SetFill(w io.Writer) error

	// Equal reports whether other is the same color space and value,
	// letting a content stream writer skip re-emitting a color operator
	// when the color hasn't actually changed.
	Equal(other Color) bool
}

type gray float64

// Gray returns a color in the /DeviceGray color space.
// The value must be in the range from 0 (black) to 1 (white).
func Gray(g float64) Color {
	return gray(g)
}

func (c gray) SetStroke(w io.Writer) error {
	gString := float.Format(float64(c), 3)
	_, err := fmt.Fprintln(w, gString, "G")
	return err
}

func (c gray) SetFill(w io.Writer) error {
	gString := float.Format(float64(c), 3)
	_, err := fmt.Fprintln(w, gString, "g")
	return err
}

func (c gray) Equal(other Color) bool {
	o, ok := other.(gray)
	return ok && o == c
}

// Black is the default color in the /DeviceGray color space.
var Black = gray(0)

type rgb struct {
	R, G, B float64
}

// RGB returns a color in the /DeviceRGB color space.
// Each component must be in the range [0, 1].
func RGB(r, g, b float64) Color {
	return &rgb{r, g, b}
}

func (c *rgb) SetStroke(w io.Writer) error {
	rString := float.Format(c.R, 3)
	gString := float.Format(c.G, 3)
	bString := float.Format(c.B, 3)
	_, err := fmt.Fprintln(w, rString, gString, bString, "RG")
	return err
}

func (c *rgb) SetFill(w io.Writer) error {
	rString := float.Format(c.R, 3)
	gString := float.Format(c.G, 3)
	bString := float.Format(c.B, 3)
	_, err := fmt.Fprintln(w, rString, gString, bString, "rg")
	return err
}

func (c *rgb) Equal(other Color) bool {
	o, ok := other.(*rgb)
	return ok && o != nil && *o == *c
}

type cmyk struct {
	C, M, Y, K float64
}

// CMYK returns a color in the /DeviceCMYK color space.
// Each component must be in the range [0, 1].
func CMYK(c, m, y, k float64) Color {
	return &cmyk{c, m, y, k}
}

func (c *cmyk) SetStroke(w io.Writer) error {
	cString := float.Format(c.C, 3)
	mString := float.Format(c.M, 3)
	yString := float.Format(c.Y, 3)
	kString := float.Format(c.K, 3)
	_, err := fmt.Fprintln(w, cString, mString, yString, kString, "K")
	return err
}

func (c *cmyk) SetFill(w io.Writer) error {
	cString := float.Format(c.C, 3)
	mString := float.Format(c.M, 3)
	yString := float.Format(c.Y, 3)
	kString := float.Format(c.K, 3)
	_, err := fmt.Fprintln(w, cString, mString, yString, kString, "k")
	return err
}

func (c *cmyk) Equal(other Color) bool {
	o, ok := other.(*cmyk)
	return ok && o != nil && *o == *c
}
