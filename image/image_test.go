package image

import (
	"bytes"
	stdimage "image"
	gocolor "image/color"
	"testing"

	"go.inkforge.dev/pdf"
)

func TestFromImageOpaque(t *testing.T) {
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, 2, 2))
	img.Set(0, 0, gocolor.RGBA{R: 255, A: 255})
	img.Set(1, 0, gocolor.RGBA{G: 255, A: 255})
	img.Set(0, 1, gocolor.RGBA{A: 255})
	img.Set(1, 1, gocolor.RGBA{B: 255, A: 255})

	desc, alpha := FromImage(img)
	if desc.Width != 2 || desc.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", desc.Width, desc.Height)
	}
	if desc.ColorSpace != DeviceRGB {
		t.Errorf("ColorSpace = %v, want DeviceRGB", desc.ColorSpace)
	}
	if alpha != nil {
		t.Error("expected no soft mask for a fully opaque image")
	}
	if len(desc.Data) != 2*2*3 {
		t.Errorf("Data length = %d, want %d", len(desc.Data), 12)
	}
}

func TestFromImageWithAlpha(t *testing.T) {
	img := stdimage.NewNRGBA(stdimage.Rect(0, 0, 1, 1))
	img.Set(0, 0, gocolor.NRGBA{R: 10, G: 20, B: 30, A: 128})

	_, alpha := FromImage(img)
	if alpha == nil {
		t.Fatal("expected a soft mask for a partially transparent image")
	}
	if len(alpha) != 1 {
		t.Fatalf("alpha length = %d, want 1", len(alpha))
	}
}

func TestToStreamUncompressed(t *testing.T) {
	desc := &Descriptor{Width: 1, Height: 1, ColorSpace: DeviceGray, BitsPerComponent: 8, Data: []byte{0x80}}
	s, err := desc.ToStream(nil)
	if err != nil {
		t.Fatal(err)
	}
	if subtype, _ := s.Dict.Get("Subtype"); subtype != pdf.Name("Image") {
		t.Errorf("Subtype = %v", subtype)
	}
	width, _ := s.Dict.Get("Width")
	height, _ := s.Dict.Get("Height")
	if width != pdf.Integer(1) || height != pdf.Integer(1) {
		t.Errorf("dimensions wrong: %v", s.Dict)
	}
	if _, ok := s.Dict.Get("Filter"); ok {
		t.Error("expected no /Filter entry when compress is nil")
	}
	if !bytes.Equal(s.Data, []byte{0x80}) {
		t.Errorf("Data = %v", s.Data)
	}
}

type stubCompressor struct{}

func (stubCompressor) Name() pdf.Name                    { return "FlateDecode" }
func (stubCompressor) Compress(d []byte) ([]byte, error) { return append([]byte{'x'}, d...), nil }

func TestToStreamCompressed(t *testing.T) {
	desc := &Descriptor{Width: 1, Height: 1, ColorSpace: DeviceGray, BitsPerComponent: 8, Data: []byte{0x01}}
	s, err := desc.ToStream(stubCompressor{})
	if err != nil {
		t.Fatal(err)
	}
	if filter, _ := s.Dict.Get("Filter"); filter != pdf.Name("FlateDecode") {
		t.Errorf("Filter = %v", filter)
	}
	if !bytes.Equal(s.Data, []byte{'x', 0x01}) {
		t.Errorf("Data = %v", s.Data)
	}
}

func TestToStreamSoftMask(t *testing.T) {
	desc := &Descriptor{Width: 1, Height: 1, ColorSpace: DeviceRGB, BitsPerComponent: 8, Data: []byte{1, 2, 3}}
	desc.SoftMask = pdf.Reference{Number: 5, Generation: 0}
	s, err := desc.ToStream(nil)
	if err != nil {
		t.Fatal(err)
	}
	if mask, _ := s.Dict.Get("SMask"); mask != desc.SoftMask {
		t.Errorf("SMask = %v, want %v", mask, desc.SoftMask)
	}
}
