package config_test

import (
	"testing"
	"time"

	"github.com/tunafinance/pesaboard/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.Env != "development" {
		t.Fatalf("expected default env development, got %q", cfg.Env)
	}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode by default")
	}
	if cfg.HTTPPort != "3000" {
		t.Fatalf("expected default HTTP port 3000, got %s", cfg.HTTPPort)
	}
	if cfg.DarajaBaseURL != "https://sandbox.safaricom.co.ke" {
		t.Fatalf("expected sandbox base URL by default, got %s", cfg.DarajaBaseURL)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected in-memory store by default, got database URL %q", cfg.DatabaseURL)
	}
	if cfg.ReportCacheTTL != 30*time.Second {
		t.Fatalf("expected 30s report cache TTL, got %s", cfg.ReportCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CONSUMER_KEY", "key")
	t.Setenv("CONSUMER_SECRET", "secret")
	t.Setenv("SHORTCODE", "600999")
	t.Setenv("PASSKEY", "passkey")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DARAJA_TIMEOUT", "5s")
	t.Setenv("FRONTEND_URL", "https://dashboard.example.com")
	t.Setenv("RATE_LIMIT", "10")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.IsDevelopment() {
		t.Fatal("expected production mode")
	}
	if cfg.ConsumerKey != "key" || cfg.ConsumerSecret != "secret" {
		t.Fatalf("expected credential overrides, got %q/%q", cfg.ConsumerKey, cfg.ConsumerSecret)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}
	if cfg.DarajaTimeout != 5*time.Second {
		t.Fatalf("expected provider timeout override, got %s", cfg.DarajaTimeout)
	}
	if cfg.FrontendURL != "https://dashboard.example.com" {
		t.Fatalf("expected frontend URL override, got %s", cfg.FrontendURL)
	}
	if cfg.RateLimit != 10 {
		t.Fatalf("expected rate limit override, got %v", cfg.RateLimit)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
