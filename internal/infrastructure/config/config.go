package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Environment
	Env string `env:"APP_ENV" envDefault:"development"`

	// Daraja provider credentials
	ConsumerKey    string `env:"CONSUMER_KEY"    envDefault:""`
	ConsumerSecret string `env:"CONSUMER_SECRET" envDefault:""`
	Shortcode      string `env:"SHORTCODE"       envDefault:""`
	Passkey        string `env:"PASSKEY"         envDefault:""`

	// Daraja endpoints
	DarajaBaseURL   string        `env:"DARAJA_BASE_URL"   envDefault:"https://sandbox.safaricom.co.ke"`
	CallbackBaseURL string        `env:"CALLBACK_BASE_URL" envDefault:"https://your-domain.com"`
	DarajaTimeout   time.Duration `env:"DARAJA_TIMEOUT"    envDefault:"30s"`

	// HTTP server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"3000"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// CORS
	FrontendURL string `env:"FRONTEND_URL" envDefault:""`

	// Storage (optional; in-memory store when unset)
	DatabaseURL      string `env:"DATABASE_URL"       envDefault:""`
	DatabaseMaxConns int    `env:"DATABASE_MAX_CONNS" envDefault:"10"`
	DatabaseMinConns int    `env:"DATABASE_MIN_CONNS" envDefault:"2"`
	MigrationsPath   string `env:"MIGRATIONS_PATH"    envDefault:"migrations"`

	// Report cache (optional; disabled when unset)
	RedisURL       string        `env:"REDIS_URL"        envDefault:""`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"30s"`

	// Rate limiting (dashboard API only; 0 disables)
	RateLimit      float64 `env:"RATE_LIMIT"       envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
