package web

import "net/http"

// GetQuote returns the quote of the day. The quote client absorbs
// upstream failures and substitutes its fixed fallback, so this
// endpoint always answers 200.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quotes.Daily(r.Context()))
}

// GetWeather proxies current conditions for the given coordinates.
// Unlike the quote endpoint, upstream failure is surfaced to the
// caller.
func (h *Handler) GetWeather(w http.ResponseWriter, r *http.Request) {
	lat := r.URL.Query().Get("lat")
	lon := r.URL.Query().Get("lon")

	details := make(map[string]string)
	if lat == "" {
		details["lat"] = "Required"
	}
	if lon == "" {
		details["lon"] = "Required"
	}
	if len(details) > 0 {
		respondInvalid(w, "Location coordinates required", details)
		return
	}

	report, err := h.weather.Current(r.Context(), lat, lon)
	if err != nil {
		respondJSON(w, http.StatusBadGateway, map[string]string{
			"error":   "Weather data unavailable",
			"message": err.Error(),
		})
		return
	}
	respondJSON(w, http.StatusOK, report)
}
