package web

import (
	"net/http"
	"testing"

	"github.com/halversen/daystart/internal/domain"
	"github.com/halversen/daystart/internal/quote"
	"github.com/halversen/daystart/internal/weather"
)

func TestCreateQuickLink(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		check          func(t *testing.T, link domain.QuickLink)
	}{
		{
			name:           "minimal link gets the default icon",
			body:           `{"name":"Gmail","url":"https://gmail.com"}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, link domain.QuickLink) {
				if link.Icon != "🔗" {
					t.Errorf("expected default icon, got %q", link.Icon)
				}
			},
		},
		{
			name:           "missing url",
			body:           `{"name":"Gmail"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			body:           `{"url":"https://gmail.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing both reports both fields",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t, quote.Config{}, weather.Config{})
			rr := api.do(t, http.MethodPost, "/api/quick-links", tt.body)
			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rr.Code, rr.Body.String())
			}
			if tt.check != nil {
				tt.check(t, decodeBody[domain.QuickLink](t, rr))
			}
		})
	}
}

func TestQuickLinksOrderedByOrder(t *testing.T) {
	api := newTestAPI(t, quote.Config{}, weather.Config{})
	api.do(t, http.MethodPost, "/api/quick-links", `{"name":"b","url":"https://b.example","order":2}`)
	api.do(t, http.MethodPost, "/api/quick-links", `{"name":"a","url":"https://a.example","order":1}`)

	links := decodeBody[[]domain.QuickLink](t, api.do(t, http.MethodGet, "/api/quick-links", ""))
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Name != "a" || links[1].Name != "b" {
		t.Errorf("links out of order: %q, %q", links[0].Name, links[1].Name)
	}
}

func TestUpdateAndDeleteQuickLink(t *testing.T) {
	api := newTestAPI(t, quote.Config{}, weather.Config{})
	created := decodeBody[domain.QuickLink](t,
		api.do(t, http.MethodPost, "/api/quick-links", `{"name":"Gmail","url":"https://gmail.com"}`))

	rr := api.do(t, http.MethodPatch, "/api/quick-links/"+created.ID, `{"name":"Mail"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	updated := decodeBody[domain.QuickLink](t, rr)
	if updated.Name != "Mail" || updated.URL != "https://gmail.com" {
		t.Errorf("unexpected link after patch: %+v", updated)
	}

	if rr := api.do(t, http.MethodDelete, "/api/quick-links/"+created.ID, ""); rr.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting link, got %d", rr.Code)
	}
	if rr := api.do(t, http.MethodPatch, "/api/quick-links/"+created.ID, `{"name":"x"}`); rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 patching deleted link, got %d", rr.Code)
	}
}
