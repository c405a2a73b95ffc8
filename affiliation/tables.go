package affiliation

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/tables.yaml
var defaultTablesYAML []byte

// Mapping maps a key found in affiliation text to a country name.
type Mapping struct {
	Key     string `yaml:"key" json:"key"`
	Country string `yaml:"country" json:"country"`
}

// Tables holds the lookup data used by the suffix and keyword tiers.
// Order is significant: the first matching entry wins.
type Tables struct {
	// Abbreviations are compared with the last affiliation segment,
	// ignoring case and dots.
	Abbreviations []Mapping `yaml:"abbreviations" json:"abbreviations"`

	// Aliases are searched for as whole words in the whole affiliation.
	Aliases []Mapping `yaml:"aliases" json:"aliases"`
}

// DefaultTables returns the tables embedded in the binary.
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultTablesYAML)
}

// LoadTables reads tables from a YAML file.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables file: %w", err)
	}
	return ParseTables(data)
}

// ParseTables parses and validates tables from YAML content.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing tables YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate reports entries with an empty key or country.
func (t *Tables) Validate() error {
	var errs []error
	check := func(section string, entries []Mapping) {
		for i, m := range entries {
			if strings.TrimSpace(m.Key) == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: empty key", section, i))
			}
			if strings.TrimSpace(m.Country) == "" {
				errs = append(errs, fmt.Errorf("%s[%d]: empty country for key %q", section, i, m.Key))
			}
		}
	}
	check("abbreviations", t.Abbreviations)
	check("aliases", t.Aliases)
	return errors.Join(errs...)
}

// abbreviationKey folds an abbreviation for comparison: "U.K." and "uk"
// both become "UK".
func abbreviationKey(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), ".", ""))
}
