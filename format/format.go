// Package format defines the interfaces for co-authorship export and node
// table plugins.
package format

import (
	"io"

	"github.com/lehigh-university-libraries/coauthornet/graph"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "csv", "gexf")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Exporter is a format that can write a co-authorship graph.
type Exporter interface {
	Format

	// Export writes the graph to the output.
	Export(w io.Writer, g *graph.Graph, opts *ExportOptions) error
}

// NodeParser is a format that can read back an exported node table.
type NodeParser interface {
	Format

	// CanParse returns true if this format can parse the given input
	CanParse(peek []byte) bool

	// ParseNodes reads a name to affiliation table.
	ParseNodes(r io.Reader, opts *ParseOptions) (*NodeTable, error)
}

// ExportOptions contains options for exporting.
type ExportOptions struct {
	// Delimiter separates fields in tabular formats
	Delimiter rune

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool

	// Pretty enables indentation (for JSON/XML formats)
	Pretty bool

	// ExtraWriters holds additional output writers for formats that produce
	// more than one output file. Keys are format-specific names.
	// Example: the csv format writes its node table to ExtraWriters["nodes"].
	ExtraWriters map[string]io.Writer
}

// ParseOptions contains options for parsing node tables.
type ParseOptions struct {
	// Delimiter separates the name from the affiliation
	Delimiter rune

	// SourceName is an identifier for the source (for error messages)
	SourceName string
}

// NewExportOptions creates ExportOptions with defaults.
func NewExportOptions() *ExportOptions {
	return &ExportOptions{
		IncludeHeader: true,
		Pretty:        true,
	}
}

// NewParseOptions creates ParseOptions with defaults.
func NewParseOptions() *ParseOptions {
	return &ParseOptions{}
}
