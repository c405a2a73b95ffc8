// Package gexf provides a GEXF 1.3 export of the co-authorship network for
// Gephi.
package gexf

import (
	"encoding/xml"

	"github.com/lehigh-university-libraries/coauthornet/format"
)

// Namespace is the GEXF 1.3 namespace.
const Namespace = "http://gexf.net/1.3"

// Format implements the GEXF format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format   = (*Format)(nil)
	_ format.Exporter = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "gexf"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "GEXF 1.3 graph document (Gephi)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"gexf"}
}

func init() {
	format.Register(&Format{})
}

// Document is the root <gexf> element.
type Document struct {
	XMLName xml.Name `xml:"gexf"`
	XMLNS   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Meta    *Meta    `xml:"meta,omitempty"`
	Graph   Graph    `xml:"graph"`
}

// Meta describes the document.
type Meta struct {
	Creator     string `xml:"creator,omitempty"`
	Description string `xml:"description,omitempty"`
}

// Graph is the <graph> element.
type Graph struct {
	Mode            string       `xml:"mode,attr"`
	DefaultEdgeType string       `xml:"defaultedgetype,attr"`
	Attributes      []Attributes `xml:"attributes,omitempty"`
	Nodes           Nodes        `xml:"nodes"`
	Edges           Edges        `xml:"edges"`
}

// Attributes declares node or edge attributes.
type Attributes struct {
	Class     string      `xml:"class,attr"`
	Attribute []Attribute `xml:"attribute"`
}

// Attribute declares one attribute column.
type Attribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// Nodes wraps the node list.
type Nodes struct {
	Node []Node `xml:"node"`
}

// Node is one author.
type Node struct {
	ID        string     `xml:"id,attr"`
	Label     string     `xml:"label,attr"`
	AttValues *AttValues `xml:"attvalues,omitempty"`
}

// AttValues holds a node's attribute values.
type AttValues struct {
	AttValue []AttValue `xml:"attvalue"`
}

// AttValue is one attribute value.
type AttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

// Edges wraps the edge list.
type Edges struct {
	Edge []Edge `xml:"edge"`
}

// Edge is one co-authorship.
type Edge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Weight int    `xml:"weight,attr"`
}
