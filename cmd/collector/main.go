package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/oneseo/congestion-collector/internal/adapter/httpapi"
	kafkaadapter "github.com/oneseo/congestion-collector/internal/adapter/kafka"
	"github.com/oneseo/congestion-collector/internal/adapter/kakao"
	"github.com/oneseo/congestion-collector/internal/adapter/seoul"
	"github.com/oneseo/congestion-collector/internal/adapter/sqlite"
	"github.com/oneseo/congestion-collector/internal/collector"
	"github.com/oneseo/congestion-collector/internal/config"
	"github.com/oneseo/congestion-collector/internal/domain"
	"github.com/oneseo/congestion-collector/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()
	catalog := domain.DefaultCatalog()

	// Geocoding is feature-flagged via KAKAO_ENABLED / KAKAO_REST_API_KEY.
	var geocoder domain.Geocoder
	if cfg.KakaoEnabled {
		client := kakao.NewClient(cfg.KakaoRESTAPIKey, cfg.KakaoAPIBaseURL, cfg.KakaoTimeout, logger, metrics)
		geocoder = kakao.NewCachedGeocoder(client, cfg.KakaoCacheSize, metrics)
		logger.Info("kakao geocoding enabled", "cache_size", cfg.KakaoCacheSize, "timeout", cfg.KakaoTimeout)
	} else {
		logger.Info("kakao geocoding disabled")
	}
	resolver := domain.NewResolver(catalog, geocoder, logger)

	store, err := sqlite.Open(cfg.SQLitePath, catalog, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	fetcher := seoul.NewClient(cfg.SeoulAPIKey, cfg.SeoulAPIBaseURL, cfg.FetchTimeout,
		seoul.RetryPolicy{MaxAttempts: cfg.FetchMaxAttempts, Backoff: cfg.FetchRetryBackoff},
		clock, logger, metrics)

	var publisher collector.Publisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaSinkTopic, logger)
		publisher = kafkaPublisher
		logger.Info("kafka fan-out enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaSinkTopic)
	}

	col := collector.New(catalog, fetcher, store, publisher, clock, cfg.CollectCooldown, logger, metrics)

	srv := httpapi.NewServer(cfg.HTTPAddr, store, catalog, store, resolver, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start collection loop.
	go func() {
		if err := col.Run(ctx, cfg.CollectInterval); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("collector error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}
	if err := store.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}
	logger.Info("shutdown complete")
}
