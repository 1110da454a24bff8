// Package websearch provides the web-search augmentation client.
//
// Search is best effort: every failure mode collapses into a sentinel string
// that is embedded in the prompt, so a search-routed request always reaches
// the back model.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Tavily search API endpoint.
	DefaultBaseURL = "https://api.tavily.com"

	maxResults = 3

	sentinelUnavailable = "[web search unavailable: no API key configured]"
	sentinelNoResults   = "[web search returned no results]"
)

// Client calls the Tavily-style search API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new search client. An empty apiKey disables search;
// the client then answers every query with the unavailable sentinel.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled reports whether a search credential is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResponse struct {
	Results []SearchResult `json:"results"`
}

// SearchResult is a single (source URL, excerpt) pair from the provider.
type SearchResult struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Outcome is the result of a search call. A degraded Outcome carries a
// sentinel in Text and the failure reason; the pipeline embeds Text in the
// prompt either way.
type Outcome struct {
	Text        string
	ResultCount int
	Degraded    bool
	Reason      string
}

func degraded(reason string) Outcome {
	return Outcome{
		Text:     fmt.Sprintf("[web search failed: %s]", reason),
		Degraded: true,
		Reason:   reason,
	}
}

// Search runs the query and returns a text block ready to prepend to a
// prompt. It never returns an error: missing credential, transport failure,
// non-success status, malformed payload, and empty result sets all yield
// sentinel text instead.
func (c *Client) Search(ctx context.Context, query string) Outcome {
	if !c.Enabled() {
		return Outcome{Text: sentinelUnavailable, Degraded: true, Reason: "no API key configured"}
	}

	body, err := json.Marshal(searchRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: "basic",
		MaxResults:  maxResults,
	})
	if err != nil {
		return degraded(err.Error())
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return degraded(err.Error())
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return degraded(err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return degraded(err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return degraded(fmt.Sprintf("provider returned %d", resp.StatusCode))
	}

	var result searchResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return degraded(fmt.Sprintf("malformed payload: %v", err))
	}

	n := len(result.Results)
	if n > maxResults {
		n = maxResults
	}
	return Outcome{Text: FormatResults(result.Results), ResultCount: n}
}

// FormatResults renders up to three results in provider order, each as the
// source URL followed by its excerpt, separated by blank lines.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return sentinelNoResults
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Source: %s\n%s", r.URL, r.Content))
	}
	return strings.Join(blocks, "\n\n")
}
