package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS_ReflectsConfiguredOrigin(t *testing.T) {
	cors := NewCORS("https://dashboard.example.com")
	handler := cors.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{"configured origin", "https://dashboard.example.com", "https://dashboard.example.com"},
		{"local dev origin", "http://localhost:5173", "http://localhost:5173"},
		{"unknown origin", "https://evil.example.com", ""},
		{"no origin", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Fatalf("expected allow-origin %q, got %q", tt.wantHeader, got)
			}
		})
	}
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	cors := NewCORS("https://dashboard.example.com")
	reached := false
	handler := cors.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/confirmation", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if reached {
		t.Fatal("expected preflight to short-circuit the chain")
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Fatal("expected allow-methods header on preflight")
	}
}
