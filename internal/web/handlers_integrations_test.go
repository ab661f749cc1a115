package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/halversen/daystart/internal/quote"
	"github.com/halversen/daystart/internal/weather"
)

func TestGetQuoteFallsBackWhenUpstreamUnreachable(t *testing.T) {
	api := newTestAPI(t, quote.Config{}, weather.Config{})

	rr := api.do(t, http.MethodGet, "/api/quote", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 even with upstream down, got %d", rr.Code)
	}
	got := decodeBody[quote.Quote](t, rr)
	if got != quote.Fallback {
		t.Errorf("expected fallback quote, got %+v", got)
	}
}

func TestGetQuoteFromUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"content":"Go placidly amid the noise and haste.","author":"Max Ehrmann"}`))
	}))
	defer upstream.Close()

	api := newTestAPI(t, quote.Config{BaseURL: upstream.URL}, weather.Config{})
	got := decodeBody[quote.Quote](t, api.do(t, http.MethodGet, "/api/quote", ""))
	if got.Text != "Go placidly amid the noise and haste." || got.Author != "Max Ehrmann" {
		t.Errorf("unexpected quote: %+v", got)
	}
}

func TestGetWeatherRequiresCoordinates(t *testing.T) {
	api := newTestAPI(t, quote.Config{}, weather.Config{})

	rr := api.do(t, http.MethodGet, "/api/weather?lat=52.52", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	body := decodeBody[struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}](t, rr)
	if body.Details["lon"] == "" {
		t.Errorf("expected validation detail for lon, got %v", body.Details)
	}
	if body.Details["lat"] != "" {
		t.Errorf("lat was supplied yet flagged: %v", body.Details)
	}
}

func TestGetWeatherUpstreamFailure(t *testing.T) {
	api := newTestAPI(t, quote.Config{}, weather.Config{})

	rr := api.do(t, http.MethodGet, "/api/weather?lat=52.52&lon=13.40", "")
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 without an API key, got %d", rr.Code)
	}
	body := decodeBody[map[string]string](t, rr)
	if body["error"] != "Weather data unavailable" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestGetWeather(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"main": {"temp": 21.6, "temp_max": 24.2, "temp_min": 18.4},
			"weather": [{"main": "Clouds", "description": "scattered clouds", "icon": "03d"}],
			"name": "Berlin"
		}`))
	}))
	defer upstream.Close()

	api := newTestAPI(t, quote.Config{}, weather.Config{APIKey: "test-key", BaseURL: upstream.URL})
	rr := api.do(t, http.MethodGet, "/api/weather?lat=52.52&lon=13.40", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	report := decodeBody[weather.Report](t, rr)
	if report.Temperature != 22 || report.High != 24 || report.Low != 18 {
		t.Errorf("unexpected rounding: %+v", report)
	}
	if report.Condition != "Clouds" || report.Location != "Berlin" {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, quote.Config{}, weather.Config{})
	rr := api.do(t, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Errorf("unexpected body: %q", rr.Body.String())
	}
}
