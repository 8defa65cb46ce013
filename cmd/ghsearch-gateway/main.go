package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ghsearch"
	"github.com/kailas-cloud/ghsearch/internal/config"
	"github.com/kailas-cloud/ghsearch/internal/db"
	"github.com/kailas-cloud/ghsearch/internal/db/memory"
	dbRedis "github.com/kailas-cloud/ghsearch/internal/db/redis"
	"github.com/kailas-cloud/ghsearch/internal/domain"
	logpkg "github.com/kailas-cloud/ghsearch/internal/logger"
	"github.com/kailas-cloud/ghsearch/internal/metrics"
	"github.com/kailas-cloud/ghsearch/internal/repository/respcache"
	chiTransport "github.com/kailas-cloud/ghsearch/internal/transport/chi"
	"github.com/kailas-cloud/ghsearch/internal/transport/rest"
	healthuc "github.com/kailas-cloud/ghsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/ghsearch/internal/usecase/search"
	"github.com/kailas-cloud/ghsearch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting ghsearch gateway",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("github_base_url", cfg.GitHub.BaseURL),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.Strings("cache_addrs", cfg.Cache.Addrs),
	)

	metrics.RegisterUpstreamMetrics()

	store, err := openStore(cfg.Cache)
	if err != nil {
		logger.Fatal("Failed to create cache store", zap.Error(err))
	}
	if store != nil {
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to cache store")
	}

	// Transport chain: rest -> response cache
	restClient := rest.New(rest.Config{
		Token:     cfg.GitHub.Token,
		UserAgent: version.UserAgent(cfg.GitHub.UserAgent),
		Timeout:   cfg.GitHub.Timeout(),
		Logger:    logger,
	})
	var transport domain.HTTPClient = restClient
	if store != nil {
		transport = respcache.New(transport, store, cfg.Cache.TTL(), metrics.ResponseCacheTotal, logger)
	}

	opts := []ghsearch.Option{
		ghsearch.WithBaseURL(cfg.GitHub.BaseURL),
		ghsearch.WithHTTPClient(transport),
		ghsearch.WithPrometheus(prometheus.DefaultRegisterer),
	}
	if cfg.Search.StrictOperators {
		opts = append(opts, ghsearch.WithStrictOperators())
	}
	client, err := ghsearch.New(opts...)
	if err != nil {
		logger.Fatal("Failed to create search client", zap.Error(err))
	}

	// Health talks to the API directly so a cached 2xx never hides an outage.
	healthClient, err := ghsearch.New(
		ghsearch.WithBaseURL(cfg.GitHub.BaseURL),
		ghsearch.WithHTTPClient(restClient),
	)
	if err != nil {
		logger.Fatal("Failed to create health client", zap.Error(err))
	}

	// Pass a nil interface, not a typed nil pointer, when caching is off.
	var cachePinger healthuc.CachePinger
	if store != nil {
		cachePinger = store
	}

	searchSvc := searchuc.New(client).
		WithBatchLimit(cfg.Search.BatchLimit).
		WithMaxBatchSize(cfg.Search.MaxBatchSize)
	healthSvc := healthuc.New(cachePinger, healthClient)

	server := chiTransport.NewServer(searchSvc, healthSvc, logger)
	router := chiTransport.NewRouter(server, cfg.Auth.APIKeys, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore returns nil when caching is disabled.
func openStore(cfg config.CacheConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.CacheNone:
		return nil, nil
	case config.CacheMemory:
		return memory.NewStore(memory.Config{Size: cfg.Size, TTL: cfg.TTL()}), nil
	case config.CacheRedis, config.CacheValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
