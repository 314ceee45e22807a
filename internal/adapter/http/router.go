package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tunafinance/pesaboard/internal/adapter/http/handler"
	"github.com/tunafinance/pesaboard/internal/adapter/http/middleware"
	"github.com/tunafinance/pesaboard/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	WebhookHandler     *handler.WebhookHandler
	TransactionHandler *handler.TransactionHandler
	StatisticsHandler  *handler.StatisticsHandler
	DarajaHandler      *handler.DarajaHandler
	HealthHandler      *handler.HealthHandler

	Logger         zerolog.Logger
	FrontendOrigin string

	// ReportCache enables memoization of the cash flow report when set.
	ReportCache    usecase.Cache
	ReportCacheTTL time.Duration

	// RateLimit is requests/second per client IP for the dashboard API;
	// zero disables limiting.
	RateLimit      float64
	RateLimitBurst int
}

// NewRouter creates the HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	r.Use(middleware.NewCORS(cfg.FrontendOrigin).Wrap)

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Provider webhooks. Never rate limited: a rejected delivery
		// makes the provider retry.
		r.Post("/confirmation", cfg.WebhookHandler.Confirmation)
		r.Post("/validation", cfg.WebhookHandler.Validation)

		// Dashboard and provider-proxy API
		r.Group(func(r chi.Router) {
			if cfg.RateLimit > 0 {
				r.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitBurst).Limit)
			}

			r.Get("/test-credentials", cfg.DarajaHandler.TestCredentials)
			r.Get("/token", cfg.DarajaHandler.Token)
			r.Post("/register-url", cfg.DarajaHandler.RegisterURLs)

			r.Get("/transactions", cfg.TransactionHandler.List)
			r.Get("/statistics", cfg.StatisticsHandler.Summary)
			r.Get("/statistics/credit-score", cfg.StatisticsHandler.CreditScore)
			r.Get("/statistics/risk-alerts", cfg.StatisticsHandler.RiskAlerts)

			cashflow := http.Handler(http.HandlerFunc(cfg.StatisticsHandler.CashFlow))
			if cfg.ReportCache != nil {
				cashflow = middleware.NewReportCacheMiddleware(cfg.ReportCache, cfg.ReportCacheTTL).Wrap(cashflow)
			}
			r.Method(http.MethodGet, "/statistics/cashflow", cashflow)
		})
	})

	return r
}
