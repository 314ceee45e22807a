package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tunafinance/pesaboard/internal/adapter/daraja"
	httpAdapter "github.com/tunafinance/pesaboard/internal/adapter/http"
	"github.com/tunafinance/pesaboard/internal/adapter/http/handler"
	memoryRepo "github.com/tunafinance/pesaboard/internal/adapter/repository/memory"
	postgresRepo "github.com/tunafinance/pesaboard/internal/adapter/repository/postgres"
	redisRepo "github.com/tunafinance/pesaboard/internal/adapter/repository/redis"
	"github.com/tunafinance/pesaboard/internal/infrastructure/config"
	"github.com/tunafinance/pesaboard/internal/infrastructure/metrics"
	"github.com/tunafinance/pesaboard/internal/infrastructure/postgres"
	"github.com/tunafinance/pesaboard/internal/infrastructure/redis"
	"github.com/tunafinance/pesaboard/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	m := metrics.New()

	// Transaction store: postgres when configured, in-memory otherwise
	var (
		transactionRepo usecase.TransactionRepository
		pool            *pgxpool.Pool
	)
	if cfg.DatabaseURL != "" {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		pool, err = postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()
		transactionRepo = postgresRepo.NewTransactionRepository(pool)
		log.Info().Msg("using postgres transaction store")
	} else {
		transactionRepo = memoryRepo.NewTransactionRepository()
		log.Info().Msg("using in-memory transaction store; history is lost on restart")
	}

	// Optional report cache
	var (
		reportCache usecase.Cache
		redisClient *goredis.Client
	)
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		reportCache = redisRepo.NewCache(redisClient)
		log.Info().Dur("ttl", cfg.ReportCacheTTL).Msg("report cache enabled")
	}

	// Provider client
	darajaClient := daraja.NewClient(daraja.Config{
		BaseURL:         cfg.DarajaBaseURL,
		ConsumerKey:     cfg.ConsumerKey,
		ConsumerSecret:  cfg.ConsumerSecret,
		Shortcode:       cfg.Shortcode,
		Passkey:         cfg.Passkey,
		CallbackBaseURL: cfg.CallbackBaseURL,
	}, &http.Client{Timeout: cfg.DarajaTimeout}, m)

	// Initialize use cases
	idGen := postgresRepo.NewULIDGenerator()
	ingestionUC := usecase.NewIngestionUseCase(transactionRepo, idGen, m)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	statisticsUC := usecase.NewStatisticsUseCase(transactionRepo)

	// Initialize handlers
	webhookHandler := handler.NewWebhookHandler(ingestionUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC, cfg.Env)
	statisticsHandler := handler.NewStatisticsHandler(statisticsUC, cfg.Env)
	darajaHandler := handler.NewDarajaHandler(darajaClient, darajaClient, cfg.Env)
	healthHandler := handler.NewHealthHandler(cfg.Env, pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		WebhookHandler:     webhookHandler,
		TransactionHandler: transactionHandler,
		StatisticsHandler:  statisticsHandler,
		DarajaHandler:      darajaHandler,
		HealthHandler:      healthHandler,
		Logger:             log.Logger,
		FrontendOrigin:     cfg.FrontendURL,
		ReportCache:        reportCache,
		ReportCacheTTL:     cfg.ReportCacheTTL,
		RateLimit:          cfg.RateLimit,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("env", cfg.Env).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
