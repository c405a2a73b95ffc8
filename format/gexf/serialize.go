package gexf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/lehigh-university-libraries/coauthornet/format"
	"github.com/lehigh-university-libraries/coauthornet/graph"
)

const affiliationAttr = "0"

// Export writes the graph as a GEXF document. Node ids follow graph
// order; authors with an empty affiliation get no attribute value.
func (f *Format) Export(w io.Writer, g *graph.Graph, opts *format.ExportOptions) error {
	if opts == nil {
		opts = format.NewExportOptions()
	}

	doc, err := NewDocument(g)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	if opts.Pretty {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding GEXF: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// NewDocument converts a graph to a GEXF document.
func NewDocument(g *graph.Graph) (*Document, error) {
	names := g.Names()
	ids := make(map[string]string, len(names))

	doc := &Document{
		XMLNS:   Namespace,
		Version: "1.3",
		Meta:    &Meta{Creator: "coauthornet", Description: "Co-authorship network"},
		Graph: Graph{
			Mode:            "static",
			DefaultEdgeType: "undirected",
			Attributes: []Attributes{{
				Class:     "node",
				Attribute: []Attribute{{ID: affiliationAttr, Title: "affiliation", Type: "string"}},
			}},
		},
	}

	doc.Graph.Nodes.Node = make([]Node, 0, len(names))
	for i, name := range names {
		id := strconv.Itoa(i)
		ids[name] = id
		node := Node{ID: id, Label: name}
		if aff, _ := g.Affiliation(name); aff != "" {
			node.AttValues = &AttValues{AttValue: []AttValue{{For: affiliationAttr, Value: aff}}}
		}
		doc.Graph.Nodes.Node = append(doc.Graph.Nodes.Node, node)
	}

	edges := g.Edges()
	doc.Graph.Edges.Edge = make([]Edge, 0, len(edges))
	for i, e := range edges {
		src, ok := ids[e.A]
		if !ok {
			return nil, fmt.Errorf("edge %d references unknown node %q", i, e.A)
		}
		dst, ok := ids[e.B]
		if !ok {
			return nil, fmt.Errorf("edge %d references unknown node %q", i, e.B)
		}
		doc.Graph.Edges.Edge = append(doc.Graph.Edges.Edge, Edge{
			ID:     strconv.Itoa(i),
			Source: src,
			Target: dst,
			Weight: e.Weight,
		})
	}

	return doc, nil
}
