// Package image builds the /Image XObject dictionaries a page's
// /Resources /XObject entry, and a content stream's Do operator, refer to.
package image

import (
	stdimage "image"

	"go.inkforge.dev/pdf"
)

// ColorSpace names the PDF device color space an image's samples are in.
type ColorSpace pdf.Name

const (
	DeviceGray ColorSpace = "DeviceGray"
	DeviceRGB  ColorSpace = "DeviceRGB"
	DeviceCMYK ColorSpace = "DeviceCMYK"
)

func (c ColorSpace) components() int {
	switch c {
	case DeviceGray:
		return 1
	case DeviceCMYK:
		return 4
	default:
		return 3
	}
}

// Descriptor holds everything needed to build an /Image XObject: the
// decoded, uncompressed sample data plus the parameters a PDF viewer
// needs to interpret it.
type Descriptor struct {
	Width, Height int
	ColorSpace    ColorSpace
	BitsPerComponent int
	Data          []byte // Width*Height*components(ColorSpace), row-major, no padding

	// SoftMask, if non-zero, is the Reference to a DeviceGray image used
	// as this image's alpha channel (/SMask).
	SoftMask pdf.Reference
}

// FromImage converts img to a Descriptor, always producing 8-bit DeviceRGB
// samples (Go's image.Image interface exposes color via At, regardless of
// the source's native depth or color model, so reducing everything to one
// common representation is the simplest correct conversion). An image
// with any non-opaque pixel also gets a DeviceGray soft mask built from
// its alpha channel; the caller must still embed that mask and set
// SoftMask to its reference.
func FromImage(img stdimage.Image) (desc *Descriptor, alpha []byte) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]byte, 0, w*h*3)
	mask := make([]byte, 0, w*h)
	hasAlpha := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			data = append(data, byte(r>>8), byte(g>>8), byte(bl>>8))
			av := byte(a >> 8)
			if av != 0xff {
				hasAlpha = true
			}
			mask = append(mask, av)
		}
	}

	desc = &Descriptor{
		Width: w, Height: h,
		ColorSpace:       DeviceRGB,
		BitsPerComponent: 8,
		Data:             data,
	}
	if hasAlpha {
		alpha = mask
	}
	return desc, alpha
}

// SoftMaskDescriptor wraps alpha samples (one byte per pixel, as returned
// alongside FromImage) as a DeviceGray image Descriptor suitable for use
// as another image's /SMask.
func SoftMaskDescriptor(width, height int, alpha []byte) *Descriptor {
	return &Descriptor{
		Width: width, Height: height,
		ColorSpace:       DeviceGray,
		BitsPerComponent: 8,
		Data:             alpha,
	}
}

// ToStream builds the /Image XObject stream. If compress is non-nil, it
// is used to compress Data and its Name is recorded as the stream filter;
// otherwise Data is stored uncompressed.
func (d *Descriptor) ToStream(compress pdf.Compressor) (*pdf.Stream, error) {
	dict := pdf.Dict{
		{"Type", pdf.Name("XObject")},
		{"Subtype", pdf.Name("Image")},
		{"Width", pdf.Integer(d.Width)},
		{"Height", pdf.Integer(d.Height)},
		{"ColorSpace", pdf.Name(d.ColorSpace)},
		{"BitsPerComponent", pdf.Integer(d.BitsPerComponent)},
	}
	if !d.SoftMask.IsZero() {
		dict.Set("SMask", d.SoftMask)
	}

	data := d.Data
	if compress != nil {
		out, err := compress.Compress(data)
		if err != nil {
			return nil, &pdf.CompressionError{Filter: compress.Name(), Err: err}
		}
		dict.Set("Filter", compress.Name())
		data = out
	}

	return &pdf.Stream{Dict: dict, Data: data}, nil
}
