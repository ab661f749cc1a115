// Package quote fetches the quote of the day from quotable.io. The
// integration is best-effort: any failure (network, status, parse)
// silently yields the fixed fallback quote, never an error.
package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.quotable.io"

// Quote is the shape served to the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Fallback is served whenever the upstream call fails.
var Fallback = Quote{
	Text:   "The present moment is the only time over which we have dominion.",
	Author: "Thich Nhat Hanh",
}

// Config holds quote client configuration.
type Config struct {
	// BaseURL overrides the quotable.io endpoint, for tests.
	BaseURL string
}

// Client fetches random quotes.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a quote client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// quotableResponse is the upstream JSON shape.
type quotableResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Daily returns one motivational quote, or the fallback when the
// upstream is unreachable or answers with garbage.
func (c *Client) Daily(ctx context.Context) Quote {
	q := url.Values{}
	q.Set("minLength", "50")
	q.Set("maxLength", "150")
	q.Set("tags", "wisdom,motivational,inspirational")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/random?"+q.Encode(), nil)
	if err != nil {
		return Fallback
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Fallback
	}

	var body quotableResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Fallback
	}
	if body.Content == "" {
		return Fallback
	}

	return Quote{Text: body.Content, Author: body.Author}
}
