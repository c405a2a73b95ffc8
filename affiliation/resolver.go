// Package affiliation resolves free-text author affiliations to countries.
//
// Resolution runs a cascade of tiers from the most specific (the trailing
// segment of the affiliation, where citation-style strings put the country)
// to the least specific (any country name anywhere in the text). The first
// tier that answers wins; when none does the country is Unknown.
package affiliation

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Unknown is returned when no tier can place an affiliation.
const Unknown = "Unknown"

// Tier names reported in Match.
const (
	TierEmpty     = "empty"
	TierSuffix    = "suffix"
	TierFuzzy     = "fuzzy"
	TierKeyword   = "keyword"
	TierSubstring = "substring"
	TierNone      = "none"
)

// Tier is one resolution heuristic. Find receives a normalized affiliation
// and returns a country name and true, or false to defer to the next tier.
type Tier struct {
	Name string
	Find func(normalized string) (string, bool)
}

// Match is the outcome of resolving one affiliation.
type Match struct {
	Country string
	Tier    string
}

// Resolver maps affiliations to country names.
type Resolver struct {
	tiers []Tier
}

// NewResolver builds the standard cascade: suffix abbreviations, fuzzy
// lookup of the last segment, whole-word aliases, then country names as
// substrings.
func NewResolver(tables *Tables, catalogue *Catalogue) *Resolver {
	return NewResolverWithTiers(
		SuffixTier(tables.Abbreviations),
		FuzzyTier(catalogue),
		KeywordTier(tables.Aliases),
		SubstringTier(catalogue),
	)
}

// NewDefaultResolver builds the standard cascade from the embedded tables
// and country catalogue.
func NewDefaultResolver() (*Resolver, error) {
	tables, err := DefaultTables()
	if err != nil {
		return nil, fmt.Errorf("loading default tables: %w", err)
	}
	catalogue, err := DefaultCatalogue()
	if err != nil {
		return nil, fmt.Errorf("loading country catalogue: %w", err)
	}
	return NewResolver(tables, catalogue), nil
}

// NewResolverWithTiers builds a resolver running tiers in the given order.
func NewResolverWithTiers(tiers ...Tier) *Resolver {
	return &Resolver{tiers: tiers}
}

// TierNames returns the tier names in evaluation order.
func (r *Resolver) TierNames() []string {
	names := make([]string, len(r.tiers))
	for i, t := range r.tiers {
		names[i] = t.Name
	}
	return names
}

// Resolve returns the country for a raw affiliation, or Unknown.
func (r *Resolver) Resolve(raw string) string {
	return r.Match(raw).Country
}

// Match resolves a raw affiliation and reports which tier answered.
func (r *Resolver) Match(raw string) Match {
	s := Normalize(raw)
	if s == "" {
		return Match{Country: Unknown, Tier: TierEmpty}
	}
	for _, t := range r.tiers {
		if country, ok := t.Find(s); ok && country != "" {
			return Match{Country: country, Tier: t.Name}
		}
	}
	return Match{Country: Unknown, Tier: TierNone}
}

// SuffixTier maps the last segment through an abbreviation table,
// ignoring case and dots.
func SuffixTier(abbreviations []Mapping) Tier {
	lookup := make(map[string]string, len(abbreviations))
	for _, m := range abbreviations {
		key := abbreviationKey(m.Key)
		if _, ok := lookup[key]; !ok {
			lookup[key] = m.Country
		}
	}
	return Tier{
		Name: TierSuffix,
		Find: func(s string) (string, bool) {
			country, ok := lookup[abbreviationKey(LastSegment(s))]
			return country, ok
		},
	}
}

// FuzzyTier looks the last segment up in the country catalogue. Misses and
// ambiguous matches defer to the next tier.
func FuzzyTier(catalogue *Catalogue) Tier {
	return Tier{
		Name: TierFuzzy,
		Find: func(s string) (string, bool) {
			last := LastSegment(s)
			if last == "" {
				return "", false
			}
			country, err := catalogue.Search(last)
			if err != nil {
				slog.Debug("fuzzy country lookup failed", "segment", last, "err", err)
				return "", false
			}
			return country.Name, true
		},
	}
}

type aliasPattern struct {
	re      *regexp.Regexp
	country string
}

// KeywordTier searches the whole affiliation for each alias as a whole
// word, case-insensitively, and returns the first alias found in table
// order. "USA" therefore never matches inside "Jerusalem".
func KeywordTier(aliases []Mapping) Tier {
	patterns := make([]aliasPattern, 0, len(aliases))
	for _, m := range aliases {
		patterns = append(patterns, aliasPattern{
			re:      wholeWord(m.Key),
			country: m.Country,
		})
	}
	return Tier{
		Name: TierKeyword,
		Find: func(s string) (string, bool) {
			for _, p := range patterns {
				if p.re.MatchString(s) {
					return p.country, true
				}
			}
			return "", false
		},
	}
}

// wholeWord matches key case-insensitively when it is not flanked by a
// letter, digit or underscore. Unlike \b this also holds for keys that end
// in punctuation, such as "U.K.".
func wholeWord(key string) *regexp.Regexp {
	const notWord = `[^\pL\pN_]`
	return regexp.MustCompile(`(?i)(?:^|` + notWord + `)` + regexp.QuoteMeta(strings.TrimSpace(key)) + `(?:$|` + notWord + `)`)
}

// SubstringTier returns the first catalogue name that occurs verbatim in
// the affiliation. There is no word boundary check, so "Niger" is found
// inside "Nigeria".
func SubstringTier(catalogue *Catalogue) Tier {
	names := catalogue.Names()
	return Tier{
		Name: TierSubstring,
		Find: func(s string) (string, bool) {
			for _, name := range names {
				if strings.Contains(s, name) {
					return name, true
				}
			}
			return "", false
		},
	}
}
