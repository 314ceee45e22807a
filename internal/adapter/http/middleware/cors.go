package middleware

import "net/http"

// localDevOrigin is always allowed so the Vite dev server can reach the API.
const localDevOrigin = "http://localhost:5173"

// CORS reflects the Origin header only when it exactly matches the configured
// frontend origin or the fixed local development origin. Preflight requests
// are answered directly.
type CORS struct {
	frontendOrigin string
}

// NewCORS creates a new CORS middleware for the given frontend origin.
func NewCORS(frontendOrigin string) *CORS {
	return &CORS{frontendOrigin: frontendOrigin}
}

// Wrap wraps an http.Handler with the CORS policy.
func (c *CORS) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (origin == c.frontendOrigin || origin == localDevOrigin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
