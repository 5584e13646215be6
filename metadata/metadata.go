// Package metadata builds a document's XMP metadata stream: the Dublin
// Core and XMP Basic properties a file carries alongside the legacy
// /Info dictionary.
package metadata

import (
	"bytes"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"go.inkforge.dev/pdf"
)

// Properties is the subset of Dublin Core and XMP Basic fields a document
// typically sets. Title and Description are written under the
// "x-default" language tag; Creators carry no language tag.
type Properties struct {
	Title       string
	Description string
	Creators    []string
	Keywords    string
	Producer    string
	Created     time.Time
	Modified    time.Time
}

// Build renders props as an XMP packet and wraps it in a /Metadata stream
// dict with /Subtype /XML. pretty controls whether the XML is indented.
func Build(props Properties, pretty bool) (*pdf.Stream, error) {
	dc := &xmp.DublinCore{}
	lang := language.MustParse("x-default")
	if props.Title != "" {
		dc.Title.Set(lang, props.Title)
	}
	if props.Description != "" {
		dc.Description.Set(lang, props.Description)
	}
	for _, c := range props.Creators {
		dc.Creator.Append(xmp.NewProperName(c))
	}

	basic := &xmp.Basic{}
	if !props.Created.IsZero() {
		basic.CreateDate = xmp.NewDate(props.Created)
	}
	if !props.Modified.IsZero() {
		basic.ModifyDate = xmp.NewDate(props.Modified)
	}

	pdfNS := &pdfNamespace{}
	if props.Keywords != "" {
		pdfNS.Keywords = xmp.NewText(props.Keywords)
	}
	if props.Producer != "" {
		pdfNS.Producer = xmp.NewAgentName(props.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfNS)

	var buf bytes.Buffer
	if err := packet.Write(&buf, &xmp.PacketOptions{Pretty: pretty}); err != nil {
		return nil, err
	}

	return &pdf.Stream{
		Dict: pdf.Dict{
			{"Type", pdf.Name("Metadata")},
			{"Subtype", pdf.Name("XML")},
		},
		Data: buf.Bytes(),
	}, nil
}

// pdfNamespace is the XMP "pdf" namespace (see
// https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/).
type pdfNamespace struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	Producer   xmp.AgentName
}
