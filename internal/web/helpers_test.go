package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/halversen/daystart/internal/quote"
	"github.com/halversen/daystart/internal/service"
	"github.com/halversen/daystart/internal/store"
	"github.com/halversen/daystart/internal/weather"
)

const testUserID = "u1"

type noopRecorder struct{}

func (noopRecorder) RecordRequest(ctx context.Context, route, method string, status int) {}

type testAPI struct {
	handler http.Handler
	svc     *service.Service
	store   *store.Store
}

// newTestAPI builds a server over a fresh empty store. Integration
// clients point at unroutable endpoints unless overridden.
func newTestAPI(t *testing.T, quoteCfg quote.Config, wxCfg weather.Config) *testAPI {
	t.Helper()
	if quoteCfg.BaseURL == "" {
		quoteCfg.BaseURL = "http://127.0.0.1:1"
	}
	st := store.New()
	svc := service.New(st)
	srv := NewHTTPServer(
		Config{Port: 0, DefaultUserID: testUserID},
		svc,
		quote.NewClient(quoteCfg),
		weather.NewClient(wxCfg),
		noopRecorder{},
	)
	return &testAPI{handler: srv.Handler, svc: svc, store: st}
}

func (a *testAPI) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return v
}
