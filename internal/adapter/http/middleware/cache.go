package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tunafinance/pesaboard/internal/usecase"
)

// ReportCacheMiddleware memoizes GET responses in the shared cache, keyed by
// path and query. It wraps only the bucketed report routes: per-bucket
// rescans are O(N) in store size, and a short TTL keeps the dashboard fresh
// enough while the summary endpoints stay recompute-per-read.
type ReportCacheMiddleware struct {
	cache usecase.Cache
	ttl   time.Duration
}

// NewReportCacheMiddleware creates a new ReportCacheMiddleware.
func NewReportCacheMiddleware(cache usecase.Cache, ttl time.Duration) *ReportCacheMiddleware {
	return &ReportCacheMiddleware{cache: cache, ttl: ttl}
}

// Wrap wraps an http.Handler with response memoization. Cache failures fall
// through to recomputation.
func (m *ReportCacheMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.Path
		if r.URL.RawQuery != "" {
			key += "?" + r.URL.RawQuery
		}

		if cached, err := m.cache.Get(r.Context(), key); err == nil && cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			w.Write([]byte(cached))
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK {
			if err := m.cache.Set(r.Context(), key, recorder.body.String(), m.ttl); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to cache report")
			}
		}
	})
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
