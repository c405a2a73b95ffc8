package records

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/coauthornet/format"
)

// maxLineSize bounds a single input line; affiliations can be long.
const maxLineSize = 1024 * 1024

// Parse rebuilds name to affiliation pairs from record lines.
//
// A line holding the delimiter starts a new record: the text before the
// first delimiter is the name and the rest is the affiliation, both trimmed.
// A line without a delimiter continues the current record, appended after a
// single space; with no current record yet it is dropped. Blank lines are
// skipped. A name seen again replaces the earlier affiliation (last write
// wins).
func Parse(lines []string, delimiter rune) *format.NodeTable {
	sep := string(delimiterOrDefault(delimiter))
	table := format.NewNodeTable()

	current := ""
	hasCurrent := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if name, aff, ok := strings.Cut(line, sep); ok {
			current = strings.TrimSpace(name)
			hasCurrent = true
			table.Set(current, strings.TrimSpace(aff))
			continue
		}

		if !hasCurrent {
			continue
		}
		prev, _ := table.Get(current)
		table.Set(current, prev+" "+line)
	}

	return table
}

// ParseReader reads all lines from r and parses them as records.
func ParseReader(r io.Reader, delimiter rune) (*format.NodeTable, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	return Parse(lines, delimiter), nil
}

// ParseNodes implements format.NodeParser.
func (f *Format) ParseNodes(r io.Reader, opts *format.ParseOptions) (*format.NodeTable, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}
	table, err := ParseReader(r, opts.Delimiter)
	if err != nil && opts.SourceName != "" {
		return nil, fmt.Errorf("%s: %w", opts.SourceName, err)
	}
	return table, err
}
