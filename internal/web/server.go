// Package web is the HTTP transport over the service façade. It owns
// shape validation of request bodies; the façade below it only ever
// reports not-found.
package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/halversen/daystart/internal/quote"
	"github.com/halversen/daystart/internal/service"
	"github.com/halversen/daystart/internal/weather"
)

// Config holds server-specific configuration.
type Config struct {
	Port int
	// DefaultUserID is the account every request is scoped to; there
	// is no authentication.
	DefaultUserID string
}

// NewHTTPServer assembles the router and returns a configured server.
func NewHTTPServer(cfg Config, svc *service.Service, quotes *quote.Client, wx *weather.Client, rec MetricsRecorder) *http.Server {
	h := &Handler{
		svc:     svc,
		quotes:  quotes,
		weather: wx,
		userID:  cfg.DefaultUserID,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(Metrics(rec))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/tasks", h.ListTasks)
		r.Post("/tasks", h.CreateTask)
		r.Patch("/tasks/{id}", h.UpdateTask)
		r.Delete("/tasks/{id}", h.DeleteTask)

		r.Get("/settings", h.GetSettings)
		r.Patch("/settings", h.UpdateSettings)

		r.Get("/schedule", h.ListSchedule)
		r.Post("/schedule", h.CreateScheduleEvent)
		r.Patch("/schedule/{id}", h.UpdateScheduleEvent)
		r.Delete("/schedule/{id}", h.DeleteScheduleEvent)

		r.Get("/habits", h.ListHabits)
		r.Post("/habits", h.CreateHabit)
		r.Patch("/habits/{id}", h.UpdateHabit)
		r.Delete("/habits/{id}", h.DeleteHabit)

		r.Get("/quick-links", h.ListQuickLinks)
		r.Post("/quick-links", h.CreateQuickLink)
		r.Patch("/quick-links/{id}", h.UpdateQuickLink)
		r.Delete("/quick-links/{id}", h.DeleteQuickLink)

		r.Get("/daily-summary", h.GetDailySummary)
		r.Get("/daily-book", h.GetDailyBook)
		r.Get("/website-usage", h.ListWebsiteUsage)
		r.Get("/ai-insights", h.ListAIInsights)

		r.Get("/quote", h.GetQuote)
		r.Get("/weather", h.GetWeather)
	})

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Handler serves the dashboard API.
type Handler struct {
	svc     *service.Service
	quotes  *quote.Client
	weather *weather.Client
	userID  string
}
