package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/lehigh-university-libraries/coauthornet/format"
	"github.com/lehigh-university-libraries/coauthornet/graph"
)

// Export writes the edge table to w and, when opts.ExtraWriters holds a
// "nodes" writer, the node table to it.
func (f *Format) Export(w io.Writer, g *graph.Graph, opts *format.ExportOptions) error {
	if opts == nil {
		opts = format.NewExportOptions()
	}

	if err := writeEdges(w, g, opts); err != nil {
		return err
	}

	if nw, ok := opts.ExtraWriters[ExtraNodes]; ok && nw != nil {
		if err := writeNodes(nw, g, opts); err != nil {
			return err
		}
	}

	return nil
}

func newWriter(w io.Writer, opts *format.ExportOptions) *csv.Writer {
	writer := csv.NewWriter(w)
	writer.Comma = delimiterOrDefault(opts.Delimiter)
	return writer
}

func writeEdges(w io.Writer, g *graph.Graph, opts *format.ExportOptions) error {
	writer := newWriter(w, opts)

	// Write header
	if opts.IncludeHeader {
		if err := writer.Write([]string{"source", "target", "weight"}); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		if err := writer.Write([]string{e.A, e.B, strconv.Itoa(e.Weight)}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeNodes(w io.Writer, g *graph.Graph, opts *format.ExportOptions) error {
	writer := newWriter(w, opts)

	if opts.IncludeHeader {
		if err := writer.Write([]string{"id", "affiliation"}); err != nil {
			return err
		}
	}

	for _, name := range g.Names() {
		aff, _ := g.Affiliation(name)
		if err := writer.Write([]string{name, aff}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
