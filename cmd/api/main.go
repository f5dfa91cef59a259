package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gometeo/citydash/internal/api"
	"github.com/gometeo/citydash/internal/api/handlers"
	"github.com/gometeo/citydash/internal/config"
	"github.com/gometeo/citydash/internal/events"
	"github.com/gometeo/citydash/internal/upstream"
	"github.com/gometeo/citydash/web"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting city dashboard API...")
	logger.Info("Configuration loaded",
		"port", cfg.HTTPPort,
		"upstream_timeout", cfg.UpstreamTimeout,
		"events", cfg.EventsEnabled())

	if cfg.WeatherAPIKey == "" {
		logger.Warn("OPENWEATHER_API_KEY is not set, weather lookups will fail")
	}
	if cfg.NewsAPIKey == "" {
		logger.Warn("NEWS_API_KEY is not set, news lookups will fail")
	}

	// 1. Lookup event sink
	var publisher events.Publisher = events.Nop{}
	if cfg.EventsEnabled() {
		kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		if err != nil {
			logger.Error("Failed to connect to Kafka", "brokers", cfg.KafkaBrokers, "error", err)
			os.Exit(1)
		}
		publisher = kafka
		logger.Info("Publishing lookup events", "topic", cfg.KafkaTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", "error", err)
		}
	}()

	// 2. Upstream clients and router
	lookups := handlers.NewLookupHandler(
		upstream.NewWeatherClient(cfg, logger),
		upstream.NewNewsClient(cfg, logger),
		upstream.NewCurrencyClient(cfg, logger),
		publisher,
		logger,
	)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.NewRouter(lookups, web.Static(), logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 3. Graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("Server running", "url", "http://localhost:"+cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", "error", err)
			stopChan <- syscall.SIGTERM
		}
	}()

	<-stopChan
	logger.Info("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Error while stopping server", "error", err)
	} else {
		logger.Info("Server stopped")
	}
}

func setupLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
