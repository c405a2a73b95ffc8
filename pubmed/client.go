// Package pubmed retrieves article records from NCBI's E-utilities.
//
// Search runs esearch to collect PubMed ids for a query; Fetch pulls the
// full records with efetch in batches, pausing between requests to stay
// under NCBI's rate limit.
package pubmed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the E-utilities endpoint.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	// DefaultBatchSize is the number of ids sent per efetch request.
	DefaultBatchSize = 200

	// DefaultDelay keeps requests under three per second without an API key.
	DefaultDelay = 340 * time.Millisecond

	// DefaultTool identifies the client to NCBI.
	DefaultTool = "coauthornet"
)

// Client talks to the E-utilities API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Email and Tool are sent with every request as NCBI asks.
	Email string
	Tool  string

	// APIKey raises NCBI's rate limit when set.
	APIKey string

	BatchSize int
	Delay     time.Duration
}

// NewClient creates a Client with default endpoint, batching and delay.
func NewClient(email string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Email:     email,
		Tool:      DefaultTool,
		BatchSize: DefaultBatchSize,
		Delay:     DefaultDelay,
	}
}

// StatusError reports a non-2xx response from E-utilities.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

func (c *Client) endpoint(name string, params url.Values) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if c.Email != "" {
		params.Set("email", c.Email)
	}
	tool := c.Tool
	if tool == "" {
		tool = DefaultTool
	}
	params.Set("tool", tool)
	if c.APIKey != "" {
		params.Set("api_key", c.APIKey)
	}
	return base + "/" + name + "?" + params.Encode()
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// get performs a GET and returns the body of a 2xx response.
func (c *Client) get(ctx context.Context, name string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(name, params), nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", name, err)
	}

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", name, err)
	}
	slog.Debug("e-utilities request", "endpoint", name, "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(body))
		if len(snippet) > 200 {
			snippet = snippet[:200]
		}
		return nil, &StatusError{Endpoint: name, StatusCode: resp.StatusCode, Body: snippet}
	}
	return body, nil
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
