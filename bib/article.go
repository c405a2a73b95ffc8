// Package bib holds the bibliographic records the co-authorship network is built from.
package bib

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Article is a single bibliographic record.
type Article struct {
	Title   string   `json:"title"`
	Authors []Author `json:"authors"`
}

// Author is one entry of an article's author list.
// Name is expected in "Last, First" form and is the only identity key.
type Author struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
}

// AuthorNames returns the non-blank author names of the article in list order.
func (a Article) AuthorNames() []string {
	names := make([]string, 0, len(a.Authors))
	for _, au := range a.Authors {
		if name := strings.TrimSpace(au.Name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// FormatName joins family and given names as "Last, First".
// Missing parts are dropped along with the separator.
func FormatName(last, first string) string {
	return strings.Trim(strings.TrimSpace(last)+", "+strings.TrimSpace(first), ", ")
}

// ReadArticles decodes an article list from JSON.
// Authors without a name are dropped; they cannot become graph nodes.
func ReadArticles(r io.Reader) ([]Article, error) {
	var articles []Article
	if err := json.NewDecoder(r).Decode(&articles); err != nil {
		return nil, fmt.Errorf("decoding articles: %w", err)
	}

	skipped := 0
	for i := range articles {
		kept := articles[i].Authors[:0]
		for _, au := range articles[i].Authors {
			if strings.TrimSpace(au.Name) == "" {
				skipped++
				continue
			}
			kept = append(kept, au)
		}
		articles[i].Authors = kept
	}
	if skipped > 0 {
		slog.Debug("skipped authors without a name", "count", skipped)
	}

	return articles, nil
}

// LoadArticles reads an article list from a JSON file.
func LoadArticles(path string) ([]Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening articles file: %w", err)
	}
	defer f.Close()

	return ReadArticles(f)
}

// WriteArticles encodes an article list as indented JSON.
func WriteArticles(w io.Writer, articles []Article) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if articles == nil {
		articles = []Article{}
	}
	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}
	return nil
}
