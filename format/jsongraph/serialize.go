package jsongraph

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/coauthornet/format"
	"github.com/lehigh-university-libraries/coauthornet/graph"
)

// Export writes the graph as a JSON document.
func (f *Format) Export(w io.Writer, g *graph.Graph, opts *format.ExportOptions) error {
	if opts == nil {
		opts = format.NewExportOptions()
	}

	doc, err := ToStruct(g)
	if err != nil {
		return err
	}

	mo := protojson.MarshalOptions{Multiline: opts.Pretty}
	if opts.Pretty {
		mo.Indent = "  "
	}
	data, err := mo.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling graph JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// ToStruct converts a graph to its document form. Node ids are positions
// in graph order.
func ToStruct(g *graph.Graph) (*structpb.Struct, error) {
	names := g.Names()
	ids := make(map[string]int, len(names))

	nodes := make([]any, 0, len(names))
	for i, name := range names {
		ids[name] = i
		aff, _ := g.Affiliation(name)
		nodes = append(nodes, map[string]any{
			"id":          i,
			"label":       name,
			"affiliation": aff,
		})
	}

	edges := make([]any, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, map[string]any{
			"source": ids[e.A],
			"target": ids[e.B],
			"weight": e.Weight,
		})
	}

	doc, err := structpb.NewStruct(map[string]any{
		"directed": false,
		"nodes":    nodes,
		"edges":    edges,
	})
	if err != nil {
		return nil, fmt.Errorf("building graph document: %w", err)
	}
	return doc, nil
}
