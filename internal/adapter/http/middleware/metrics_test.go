package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestRoutePattern(t *testing.T) {
	var got string
	capture := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			got = routePattern(r)
		})
	}

	r := chi.NewRouter()
	r.Use(capture)
	r.Get("/api/statistics/cashflow", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/statistics/cashflow?timeframe=daily", nil))
	if got != "/api/statistics/cashflow" {
		t.Fatalf("expected matched route pattern, got %q", got)
	}

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/some/random/path-123", nil))
	if got != "unmatched" {
		t.Fatalf("expected unmatched requests to share one label, got %q", got)
	}

	if got := routePattern(httptest.NewRequest(http.MethodGet, "/bare", nil)); got != "unmatched" {
		t.Fatalf("expected unmatched outside a router, got %q", got)
	}
}
