package csv

import (
	"encoding/csv"
	"io"
)

// CountryRecord pairs an author with a resolved country.
type CountryRecord struct {
	Name    string
	Country string
}

// WriteCountries writes an id,country table using the given delimiter
// (';' when zero).
func WriteCountries(w io.Writer, rows []CountryRecord, delimiter rune) error {
	if delimiter == 0 {
		delimiter = ';'
	}
	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	if err := writer.Write([]string{"id", "country"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write([]string{row.Name, row.Country}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
