package affiliation

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yaml
var defaultCountriesYAML []byte

// Country is an ISO 3166-1 entry.
type Country struct {
	Alpha2       string   `yaml:"alpha_2"`
	Alpha3       string   `yaml:"alpha_3"`
	Name         string   `yaml:"name"`
	OfficialName string   `yaml:"official_name,omitempty"`
	OtherNames   []string `yaml:"other_names,omitempty"`
}

// Catalogue is an ordered set of countries with a folded-name index for
// fuzzy lookup.
type Catalogue struct {
	countries []Country
	// folded spelling -> indexes into countries
	index map[string][]int
}

type catalogueFile struct {
	Countries []Country `yaml:"countries"`
}

// DefaultCatalogue returns the catalogue embedded in the binary.
func DefaultCatalogue() (*Catalogue, error) {
	return ParseCatalogue(defaultCountriesYAML)
}

// LoadCatalogue reads a catalogue from a YAML file.
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading country catalogue: %w", err)
	}
	return ParseCatalogue(data)
}

// ParseCatalogue parses a catalogue from YAML content.
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing country catalogue: %w", err)
	}
	for i, c := range f.Countries {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("country %d (%s): missing name", i, c.Alpha3)
		}
	}
	return NewCatalogue(f.Countries), nil
}

// NewCatalogue indexes countries. Order is kept for substring scans.
func NewCatalogue(countries []Country) *Catalogue {
	c := &Catalogue{
		countries: countries,
		index:     make(map[string][]int),
	}
	for i, country := range countries {
		for _, spelling := range country.spellings() {
			key := fold(spelling)
			if key == "" || containsInt(c.index[key], i) {
				continue
			}
			c.index[key] = append(c.index[key], i)
		}
	}
	return c
}

// Len returns the number of countries.
func (c *Catalogue) Len() int {
	return len(c.countries)
}

// Countries returns the countries in catalogue order.
func (c *Catalogue) Countries() []Country {
	out := make([]Country, len(c.countries))
	copy(out, c.countries)
	return out
}

// Names returns the canonical country names in catalogue order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.countries))
	for i, country := range c.countries {
		names[i] = country.Name
	}
	return names
}

// ByAlpha3 looks a country up by its three-letter code.
func (c *Catalogue) ByAlpha3(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, country := range c.countries {
		if country.Alpha3 == code {
			return country, true
		}
	}
	return Country{}, false
}

// spellings lists every name a country answers to in a fuzzy lookup,
// including "Republic of Korea" for catalogue names like "Korea, Republic of".
func (c Country) spellings() []string {
	out := []string{c.Name}
	if c.OfficialName != "" {
		out = append(out, c.OfficialName)
	}
	out = append(out, c.OtherNames...)
	if head, tail, ok := strings.Cut(c.Name, ", "); ok {
		out = append(out, tail+" "+head)
	}
	return out
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
