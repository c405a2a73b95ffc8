package csv

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/coauthornet/format"
)

// ParseNodes reads an id,affiliation node table. The header row is optional;
// rows with an empty id are skipped and a repeated id keeps the last value.
// Without an explicit delimiter one is taken from the header when present.
func (f *Format) ParseNodes(r io.Reader, opts *format.ParseOptions) (*format.NodeTable, error) {
	if opts == nil {
		opts = format.NewParseOptions()
	}

	delimiter := opts.Delimiter
	if delimiter == 0 {
		br := bufio.NewReader(r)
		peek, _ := br.Peek(256)
		delimiter = sniffDelimiter(peek)
		r = br
	}

	reader := csv.NewReader(r)
	reader.Comma = delimiterOrDefault(delimiter)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		if opts.SourceName != "" {
			return nil, fmt.Errorf("parsing CSV %s: %w", opts.SourceName, err)
		}
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	table := format.NewNodeTable()
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		aff := ""
		if len(row) > 1 {
			aff = strings.TrimSpace(row[1])
		}
		table.Set(name, aff)
	}

	return table, nil
}

func isHeader(row []string) bool {
	return len(row) >= 2 &&
		strings.EqualFold(strings.TrimSpace(row[0]), "id") &&
		strings.EqualFold(strings.TrimSpace(row[1]), "affiliation")
}

// sniffDelimiter returns the separator of an id/affiliation header, or 0.
func sniffDelimiter(peek []byte) rune {
	header, _, _ := bytes.Cut(bytes.TrimSpace(peek), []byte("\n"))
	header = bytes.ToLower(bytes.TrimSpace(header))
	for _, sep := range []rune{',', ';', '\t'} {
		if string(header) == "id"+string(sep)+"affiliation" {
			return sep
		}
	}
	return 0
}
