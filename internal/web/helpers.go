package web

import (
	"encoding/json"
	"net/http"
	"time"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondInvalid reports a validation failure with field-level detail.
func respondInvalid(w http.ResponseWriter, msg string, details map[string]string) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"error":   msg,
		"details": details,
	})
}

// decodeJSON parses the request body into dst. A malformed or
// mistyped body is a validation failure, reported by the caller.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// dateParam returns the date query parameter, defaulting to today.
// Dates are opaque YYYY-MM-DD tokens; the server never validates
// calendar correctness.
func dateParam(r *http.Request) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return time.Now().Format("2006-01-02")
}
