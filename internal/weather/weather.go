// Package weather proxies current conditions from OpenWeatherMap.
// Unlike the quote integration, failures here propagate to the caller.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("weather API key not configured")

// Config holds weather client configuration.
type Config struct {
	APIKey string
	// BaseURL overrides the OpenWeatherMap endpoint, for tests.
	BaseURL string
}

// Client fetches current conditions.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a weather client. The client is constructed even
// without an API key; Current reports ErrNotConfigured at call time so
// the rest of the dashboard is unaffected.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Report is the shape served to the dashboard.
type Report struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Location    string `json:"location"`
	High        int    `json:"high"`
	Low         int    `json:"low"`
	Icon        string `json:"icon"`
}

// openWeatherResponse is the upstream JSON shape, reduced to the
// fields the dashboard uses.
type openWeatherResponse struct {
	Main struct {
		Temp    float64 `json:"temp"`
		TempMax float64 `json:"temp_max"`
		TempMin float64 `json:"temp_min"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Name string `json:"name"`
}

// Current returns conditions at the given coordinates in metric units.
func (c *Client) Current(ctx context.Context, lat, lon string) (*Report, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather upstream returned status %d", resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}
	if len(body.Weather) == 0 {
		return nil, errors.New("weather response missing conditions")
	}

	return &Report{
		Temperature: int(math.Round(body.Main.Temp)),
		Condition:   body.Weather[0].Main,
		Description: body.Weather[0].Description,
		Location:    body.Name,
		High:        int(math.Round(body.Main.TempMax)),
		Low:         int(math.Round(body.Main.TempMin)),
		Icon:        body.Weather[0].Icon,
	}, nil
}
