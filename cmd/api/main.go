package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Bamzhie/hedera/config"
	httpHandler "github.com/Bamzhie/hedera/internal/adapter/http/handler"
	"github.com/Bamzhie/hedera/internal/adapter/mirror"
	pgStorage "github.com/Bamzhie/hedera/internal/adapter/storage/postgres"
	redisStorage "github.com/Bamzhie/hedera/internal/adapter/storage/redis"
	"github.com/Bamzhie/hedera/internal/core/ports"
	"github.com/Bamzhie/hedera/internal/service"
	"github.com/Bamzhie/hedera/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Credentials are commonly provided via a .env file in development.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Hedera ledger service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	// Optional Redis cache for mirror balance lookups
	var balanceCache ports.BalanceCache
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		balanceCache = redisStorage.NewBalanceCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize repositories and adapters
	accountRepo := pgStorage.NewAccountRepo(pool)
	mirrorClient := mirror.NewClient(cfg.Hedera.MirrorBaseURL, &http.Client{Timeout: 10 * time.Second}, log)

	// Ledger client handle, shared by all operations except token creation
	ledgerClient, err := service.NewLedgerClient(cfg.Hedera, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize ledger client")
	}
	defer ledgerClient.Close()

	ledgerSvc := service.NewLedgerService(ledgerClient, cfg.Hedera, accountRepo, mirrorClient, balanceCache, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
