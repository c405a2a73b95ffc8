package pubmed

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/lehigh-university-libraries/coauthornet/bib"
	"github.com/lehigh-university-libraries/coauthornet/helpers"
)

type pubmedArticle struct {
	Citation struct {
		PMID    string      `xml:"PMID"`
		Article *articleXML `xml:"Article"`
	} `xml:"MedlineCitation"`
}

type articleXML struct {
	Title   markup      `xml:"ArticleTitle"`
	Authors []authorXML `xml:"AuthorList>Author"`
}

type authorXML struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	CollectiveName markup   `xml:"CollectiveName"`
	Affiliations   []markup `xml:"AffiliationInfo>Affiliation"`
}

// markup captures element content including inline tags such as <i>.
type markup struct {
	Inner string `xml:",innerxml"`
}

func (m markup) Text() string {
	return helpers.StripMarkup(m.Inner)
}

// Fetch retrieves the articles for ids, BatchSize ids per request.
func (c *Client) Fetch(ctx context.Context, ids []string) ([]bib.Article, error) {
	size := c.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	var articles []bib.Article
	for start := 0; start < len(ids); start += size {
		if start > 0 {
			if err := wait(ctx, c.Delay); err != nil {
				return articles, err
			}
		}
		end := min(start+size, len(ids))
		slog.Info("fetching articles", "from", start+1, "to", end, "total", len(ids))

		batch, err := c.fetchBatch(ctx, ids[start:end])
		if err != nil {
			return articles, fmt.Errorf("fetching ids %d-%d: %w", start+1, end, err)
		}
		articles = append(articles, batch...)
	}

	return articles, nil
}

// SearchAndFetch runs Search then Fetch.
func (c *Client) SearchAndFetch(ctx context.Context, term string, retmax int) ([]bib.Article, error) {
	ids, err := c.Search(ctx, term, retmax)
	if err != nil {
		return nil, err
	}
	slog.Info("search complete", "term", term, "ids", len(ids))
	if len(ids) == 0 {
		return nil, nil
	}
	if err := wait(ctx, c.Delay); err != nil {
		return nil, err
	}
	return c.Fetch(ctx, ids)
}

func (c *Client) fetchBatch(ctx context.Context, ids []string) ([]bib.Article, error) {
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("rettype", "xml")
	params.Set("retmode", "xml")

	body, err := c.get(ctx, "efetch.fcgi", params)
	if err != nil {
		return nil, err
	}
	return ParseArticles(bytes.NewReader(body))
}

// ParseArticles decodes a PubmedArticleSet document. Records without an
// Article element are logged and skipped.
func ParseArticles(r io.Reader) ([]bib.Article, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var articles []bib.Article
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return articles, fmt.Errorf("decoding efetch XML: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "PubmedArticle" {
			continue
		}

		var rec pubmedArticle
		if err := dec.DecodeElement(&rec, &start); err != nil {
			return articles, fmt.Errorf("decoding PubmedArticle: %w", err)
		}
		if rec.Citation.Article == nil {
			slog.Warn("skipping record without article", "pmid", rec.Citation.PMID)
			continue
		}
		articles = append(articles, toArticle(rec.Citation.Article))
	}

	return articles, nil
}

func toArticle(a *articleXML) bib.Article {
	article := bib.Article{
		Title:   a.Title.Text(),
		Authors: make([]bib.Author, 0, len(a.Authors)),
	}
	for _, au := range a.Authors {
		name := bib.FormatName(au.LastName, au.ForeName)
		if name == "" {
			name = au.CollectiveName.Text()
		}
		if name == "" {
			continue
		}
		author := bib.Author{Name: name}
		if len(au.Affiliations) > 0 {
			author.Affiliation = au.Affiliations[0].Text()
		}
		article.Authors = append(article.Authors, author)
	}
	return article
}
