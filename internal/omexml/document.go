// Package omexml maps OME-XML metadata documents into per-series records.
//
// Parsing happens in two stages. Parse decodes the document envelope once,
// indexing the Image elements without touching their contents. Series then
// maps a single Image element into a typed record on demand, which is what
// keeps iteration over large multi-series documents lazy: one call, one
// series worth of mapping work.
package omexml

import (
	"encoding/xml"
	"fmt"

	"github.com/keithschulze/omemeta/internal/types"
)

// element is a minimal DOM node: name, attributes, child elements.
// Character data is irrelevant to OME metadata and is discarded.
type element struct {
	name     xml.Name
	attrs    map[string]string
	children []*element
}

func (e *element) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	e.name = start.Name
	e.attrs = make(map[string]string, len(start.Attr))
	for _, a := range start.Attr {
		e.attrs[a.Name.Local] = a.Value
	}

	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &element{}
			if err := child.UnmarshalXML(d, t); err != nil {
				return err
			}
			e.children = append(e.children, child)
		case xml.EndElement:
			return nil
		}
	}
}

// child returns the first child element with the given local name in the
// document's namespace, or nil.
func (e *element) child(local, space string) *element {
	for _, c := range e.children {
		if c.name.Local == local && c.name.Space == space {
			return c
		}
	}
	return nil
}

// childrenNamed returns all child elements with the given local name in the
// document's namespace, in document order.
func (e *element) childrenNamed(local, space string) []*element {
	var out []*element
	for _, c := range e.children {
		if c.name.Local == local && c.name.Space == space {
			out = append(out, c)
		}
	}
	return out
}

// Document is a parsed OME-XML metadata document with its series elements
// indexed for on-demand mapping.
type Document struct {
	raw    []byte
	ns     string
	series []*element
}

// Parse decodes an OME-XML document envelope and indexes its Image
// elements. The OME schema namespace is taken from the root element, so
// documents from any schema release parse uniformly.
func Parse(data []byte) (*Document, error) {
	root := &element{}
	if err := xml.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("decode OME-XML: %w", err)
	}
	if root.name.Local != "OME" {
		return nil, fmt.Errorf("not an OME document: root element is %q", root.name.Local)
	}

	doc := &Document{raw: data, ns: root.name.Space}
	doc.series = root.childrenNamed("Image", doc.ns)
	return doc, nil
}

// Raw returns the OME-XML bytes the document was parsed from.
func (d *Document) Raw() []byte {
	return d.raw
}

// Namespace returns the OME schema namespace of the document root.
func (d *Document) Namespace() string {
	return d.ns
}

// SeriesCount returns the number of Image elements in the document.
func (d *Document) SeriesCount() int {
	return len(d.series)
}

// Series maps the Image element at index i into a SeriesMetadata record.
// Non-fatal issues (unparseable optional values, dropped malformed planes)
// are reported as warnings alongside the record.
func (d *Document) Series(i int) (types.SeriesMetadata, []types.Warning, error) {
	if i < 0 || i >= len(d.series) {
		return types.SeriesMetadata{}, nil, fmt.Errorf("series index %d out of range [0,%d)", i, len(d.series))
	}
	return d.mapSeries(d.series[i], i)
}
