// Package csv provides CSV tables for the co-authorship network: an edge
// table (source, target, weight) with a companion node table (id,
// affiliation) as Cytoscape imports them, and the per-author country table.
package csv

import "github.com/lehigh-university-libraries/coauthornet/format"

// ExtraNodes is the ExtraWriters key the node table is written to.
const ExtraNodes = "nodes"

// Format implements the CSV format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Exporter   = (*Format)(nil)
	_ format.NodeParser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Comma-separated edge table with a companion node table (Cytoscape)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv", "tsv"}
}

// CanParse returns true if the input starts with a node table header.
func (f *Format) CanParse(peek []byte) bool {
	return sniffDelimiter(peek) != 0
}

func init() {
	format.Register(&Format{})
}

func delimiterOrDefault(d rune) rune {
	if d == 0 {
		return ','
	}
	return d
}
