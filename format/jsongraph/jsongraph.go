// Package jsongraph provides a JSON graph document:
//
//	{"nodes": [{"id": 0, "label": "Smith, J", "affiliation": "..."}],
//	 "edges": [{"source": 0, "target": 1, "weight": 2}]}
//
// The document is assembled as a google.protobuf.Struct and rendered with
// protojson, so it can also be embedded in protobuf messages unchanged.
package jsongraph

import (
	"bytes"

	"github.com/lehigh-university-libraries/coauthornet/format"
)

// Format implements the JSON graph format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Exporter   = (*Format)(nil)
	_ format.NodeParser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON graph document (nodes and weighted edges)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// CanParse returns true if the input is a JSON object with a nodes list.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	return len(peek) > 0 && peek[0] == '{' && bytes.Contains(peek, []byte(`"nodes"`))
}

func init() {
	format.Register(&Format{})
}
