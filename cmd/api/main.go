package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"scamintel-lab/internal/api"
	"scamintel-lab/internal/api/handlers"
	"scamintel-lab/internal/config"
	"scamintel-lab/internal/domain/services"
	"scamintel-lab/internal/heuristics"
	"scamintel-lab/internal/infrastructure/cache"
	"scamintel-lab/internal/intel"
	"scamintel-lab/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var log *logger.Logger
	if cfg.App.Environment == "production" {
		log = logger.NewProduction()
	} else {
		log = logger.NewDevelopment()
	}
	logger.SetGlobal(log)

	log.Info().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Msg("starting ScamIntel Lab")

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize cache (optional)
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache, err = cache.NewRedis(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to connect to Redis, continuing without cache")
			redisCache = nil
		} else {
			defer redisCache.Close()
			log.Info().Str("addr", cfg.Redis.Addr()).Msg("connected to Redis")
		}
	}

	// Initialize services
	engine := heuristics.NewEngine(log)
	intelClient := intel.NewClient(intel.Config{
		VirusTotalAPIKey:   cfg.Intel.VirusTotalAPIKey,
		VirusTotalBaseURL:  cfg.Intel.VirusTotalBaseURL,
		URLScanAPIKey:      cfg.Intel.URLScanAPIKey,
		URLScanBaseURL:     cfg.Intel.URLScanBaseURL,
		AllowActiveURLScan: cfg.Intel.AllowActiveURLScan,
		PollAttempts:       cfg.Intel.PollAttempts,
		PollDelay:          cfg.Intel.PollDelay,
		RequestTimeout:     cfg.Intel.RequestTimeout,
	}, log)
	// A typed-nil RedisCache must not reach the interface value.
	var intelCache services.IntelCache
	if redisCache != nil {
		intelCache = redisCache
	}
	analyzer := services.NewAnalyzer(engine, intelClient, intelCache, cfg.Analysis, log)

	log.Info().
		Bool("virustotal", cfg.Intel.VirusTotalAPIKey != "").
		Bool("urlscan", cfg.Intel.URLScanAPIKey != "").
		Bool("active_scan", cfg.Intel.AllowActiveURLScan).
		Msg("intel providers configured")

	// Initialize handlers
	deps := handlers.Dependencies{
		Analyzer: analyzer,
		Cache:    redisCache,
		Logger:   log,
	}
	h := handlers.NewHandlers(deps)

	// Create router
	router := api.NewRouter(*cfg, h, redisCache, log)
	httpHandler := router.Setup()

	// Start HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("addr", httpServer.Addr).
			Msg("starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("shutdown complete")
}
