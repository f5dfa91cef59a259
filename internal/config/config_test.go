package config

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.HTTPPort != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.HTTPPort)
	}
	if cfg.WeatherURL != "https://api.openweathermap.org/data/2.5/weather" {
		t.Errorf("unexpected weather URL: %s", cfg.WeatherURL)
	}
	if cfg.NewsURL != "https://newsapi.org/v2/everything" {
		t.Errorf("unexpected news URL: %s", cfg.NewsURL)
	}
	if cfg.ExchangeURL != "https://api.exchangerate-api.com/v4/latest" {
		t.Errorf("unexpected exchange URL: %s", cfg.ExchangeURL)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.UpstreamTimeout)
	}
	if cfg.EventsEnabled() {
		t.Error("events should be disabled without brokers")
	}
	if cfg.KafkaTopic != "city_lookups" {
		t.Errorf("unexpected topic: %s", cfg.KafkaTopic)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"HTTP_PORT":           "8080",
		"OPENWEATHER_API_KEY": "w-key",
		"NEWS_API_KEY":        "n-key",
		"UPSTREAM_TIMEOUT":    "2s",
		"KAFKA_BROKERS":       "k1:9092,k2:9092",
		"ENV":                 "production",
		"LOG_LEVEL":           "DEBUG",
	}))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.HTTPPort != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.WeatherAPIKey != "w-key" || cfg.NewsAPIKey != "n-key" {
		t.Errorf("keys not loaded: %q %q", cfg.WeatherAPIKey, cfg.NewsAPIKey)
	}
	if cfg.UpstreamTimeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %s", cfg.UpstreamTimeout)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Errorf("unexpected brokers: %v", cfg.KafkaBrokers)
	}
	if !cfg.EventsEnabled() {
		t.Error("events should be enabled")
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
}

func TestLoadRejectsZeroTimeout(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"UPSTREAM_TIMEOUT": "0s",
	}))
	if err == nil {
		t.Fatal("expected error for zero timeout")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"UPSTREAM_TIMEOUT": "soon",
	}))
	if err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}
