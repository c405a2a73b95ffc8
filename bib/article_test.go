package bib

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		last, first string
		want        string
	}{
		{"Smith", "John", "Smith, John"},
		{"Smith", "", "Smith"},
		{"", "John", "John"},
		{"", "", ""},
		{" Lee ", " K ", "Lee, K"},
	}

	for _, tt := range tests {
		if got := FormatName(tt.last, tt.first); got != tt.want {
			t.Errorf("FormatName(%q, %q) = %q, want %q", tt.last, tt.first, got, tt.want)
		}
	}
}

func TestReadArticles(t *testing.T) {
	input := `[
  {"title": "Pangenome of E. coli", "authors": [
    {"name": "Smith, J", "affiliation": "MIT, USA"},
    {"name": "", "affiliation": "Nowhere"},
    {"affiliation": "Missing name"},
    {"name": "Lee, K"}
  ]},
  {"title": "No authors"}
]`

	articles, err := ReadArticles(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadArticles failed: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}

	authors := articles[0].Authors
	if len(authors) != 2 {
		t.Fatalf("got %d authors, want 2: %+v", len(authors), authors)
	}
	if authors[0].Name != "Smith, J" || authors[0].Affiliation != "MIT, USA" {
		t.Errorf("first author = %+v", authors[0])
	}
	if authors[1].Name != "Lee, K" || authors[1].Affiliation != "" {
		t.Errorf("second author = %+v", authors[1])
	}
	if len(articles[1].Authors) != 0 {
		t.Errorf("expected no authors, got %+v", articles[1].Authors)
	}
}

func TestReadArticlesInvalid(t *testing.T) {
	if _, err := ReadArticles(strings.NewReader(`{"title": "not a list"}`)); err == nil {
		t.Error("expected error for non-array input")
	}
}

func TestAuthorNames(t *testing.T) {
	a := Article{Authors: []Author{{Name: "A"}, {Name: "  "}, {Name: " B "}}}
	got := a.AuthorNames()
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("AuthorNames() = %q", got)
	}
}

func TestWriteArticlesRoundTrip(t *testing.T) {
	in := []Article{{Title: "T & U", Authors: []Author{{Name: "Smith, J", Affiliation: "Dept <A>, Lyon, France"}}}}

	var buf bytes.Buffer
	if err := WriteArticles(&buf, in); err != nil {
		t.Fatalf("WriteArticles failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Dept <A>") {
		t.Errorf("expected unescaped HTML characters, got %s", buf.String())
	}

	out, err := ReadArticles(&buf)
	if err != nil {
		t.Fatalf("ReadArticles failed: %v", err)
	}
	if len(out) != 1 || out[0].Title != "T & U" || out[0].Authors[0].Affiliation != "Dept <A>, Lyon, France" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
