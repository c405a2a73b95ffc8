// Package records provides the "name;affiliation" record file.
//
// Each record is one line: an author name, a delimiter, and the raw
// affiliation. Affiliations that contained line breaks continue on the
// following lines without a delimiter. The format is lossy (a name holding
// the delimiter cannot be represented) but it is what spreadsheet round
// trips of the node table tend to produce.
package records

import (
	"bytes"

	"github.com/lehigh-university-libraries/coauthornet/format"
)

// DefaultDelimiter separates the name from the affiliation.
const DefaultDelimiter = ';'

// Format implements the record file format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Exporter   = (*Format)(nil)
	_ format.NodeParser = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "records"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Semicolon-delimited name;affiliation records with continuation lines"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"txt"}
}

// CanParse returns true if the input looks like a record file.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}
	if peek[0] == '{' || peek[0] == '[' || peek[0] == '<' {
		return false
	}
	first, _, _ := bytes.Cut(peek, []byte("\n"))
	return bytes.ContainsRune(first, DefaultDelimiter)
}

func init() {
	format.Register(&Format{})
}

func delimiterOrDefault(d rune) rune {
	if d == 0 {
		return DefaultDelimiter
	}
	return d
}
