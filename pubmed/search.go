package pubmed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

type searchResponse struct {
	Result struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
		Error  string   `json:"ERROR"`
	} `json:"esearchresult"`
	Error string `json:"error"`
}

// Search returns up to retmax PubMed ids matching term.
func (c *Client) Search(ctx context.Context, term string, retmax int) ([]string, error) {
	if term == "" {
		return nil, errors.New("search term is required")
	}
	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("term", term)
	params.Set("retmode", "json")
	if retmax > 0 {
		params.Set("retmax", strconv.Itoa(retmax))
	}

	body, err := c.get(ctx, "esearch.fcgi", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding esearch response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("esearch: %s", resp.Error)
	}
	if resp.Result.Error != "" {
		return nil, fmt.Errorf("esearch: %s", resp.Result.Error)
	}

	return resp.Result.IDList, nil
}
