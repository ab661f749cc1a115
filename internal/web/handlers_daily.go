package web

import "net/http"

// The per-day read surface: summary, book pick, website usage, and AI
// insights. All take an optional ?date=YYYY-MM-DD defaulting to today.

func (h *Handler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.DailySummary(h.userID, dateParam(r))
	if err != nil {
		respondError(w, http.StatusNotFound, "Daily summary not found")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetDailyBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.svc.DailyBook(h.userID, dateParam(r))
	if err != nil {
		respondError(w, http.StatusNotFound, "Daily book not found")
		return
	}
	respondJSON(w, http.StatusOK, book)
}

func (h *Handler) ListWebsiteUsage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.WebsiteUsage(h.userID, dateParam(r)))
}

func (h *Handler) ListAIInsights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.AIInsights(h.userID, dateParam(r)))
}
