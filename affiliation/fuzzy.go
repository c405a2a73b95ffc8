package affiliation

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// ErrNoMatch is returned when no country is close enough to the query.
	ErrNoMatch = errors.New("no matching country")

	// ErrAmbiguous is returned when the best score is shared by several countries.
	ErrAmbiguous = errors.New("ambiguous country match")
)

// Match scores, best first.
const (
	scoreExact  = 100
	scorePlural = 90
	scoreEdit   = 80 // minus 10 per edit
)

// Search finds the country whose name best matches query.
//
// Names are compared after folding away case, diacritics and punctuation.
// An exact match wins, then a singular/plural variant, then a spelling one
// edit away (two for names of nine letters or more). A bare upper-case
// three-letter code also matches its country.
func (c *Catalogue) Search(query string) (Country, error) {
	if code := strings.TrimSpace(query); len(code) == 3 && code == strings.ToUpper(code) {
		if country, ok := c.ByAlpha3(code); ok {
			return country, nil
		}
	}

	q := fold(query)
	if q == "" {
		return Country{}, ErrNoMatch
	}
	if idx := c.index[q]; len(idx) > 0 {
		return c.pick(idx)
	}

	best := 0
	var hits []int
	for key, idx := range c.index {
		score := similarity(q, key)
		if score == 0 || score < best {
			continue
		}
		if score > best {
			best = score
			hits = hits[:0]
		}
		for _, i := range idx {
			if !containsInt(hits, i) {
				hits = append(hits, i)
			}
		}
	}
	if best == 0 {
		return Country{}, ErrNoMatch
	}
	return c.pick(hits)
}

func (c *Catalogue) pick(idx []int) (Country, error) {
	if len(idx) != 1 {
		return Country{}, ErrAmbiguous
	}
	return c.countries[idx[0]], nil
}

func similarity(q, key string) int {
	if q == key {
		return scoreExact
	}
	if singular(q) == singular(key) {
		return scorePlural
	}

	n := min(len([]rune(q)), len([]rune(key)))
	maxEdits := 0
	switch {
	case n >= 9:
		maxEdits = 2
	case n >= 5:
		maxEdits = 1
	}
	if maxEdits == 0 {
		return 0
	}
	if d := levenshtein(q, key, maxEdits); d <= maxEdits {
		return scoreEdit - 10*d
	}
	return 0
}

func singular(s string) string {
	if len(s) >= 5 {
		return strings.TrimSuffix(s, "s")
	}
	return s
}

// fold lower-cases s, strips diacritics, turns punctuation into spaces and
// drops a leading "the".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		if r == '\'' || r == '’' {
			return -1
		}
		return ' '
	}, folded)
	fields := strings.Fields(folded)
	if len(fields) > 1 && fields[0] == "the" {
		fields = fields[1:]
	}
	return strings.Join(fields, " ")
}

// levenshtein returns the edit distance between a and b, or limit+1 once
// the distance is known to exceed limit.
func levenshtein(a, b string, limit int) int {
	ra, rb := []rune(a), []rune(b)
	if d := len(ra) - len(rb); d > limit || -d > limit {
		return limit + 1
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > limit {
			return limit + 1
		}
		prev, curr = curr, prev
	}
	return min(prev[len(rb)], limit+1)
}
