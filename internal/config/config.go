package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config is built once in main and handed to the components that need it.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT,default=3000"`
	Environment string `env:"ENV,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	// Provider credentials
	WeatherAPIKey string `env:"OPENWEATHER_API_KEY"`
	NewsAPIKey    string `env:"NEWS_API_KEY"`

	// Provider endpoints
	WeatherURL  string `env:"WEATHER_URL,default=https://api.openweathermap.org/data/2.5/weather"`
	NewsURL     string `env:"NEWS_URL,default=https://newsapi.org/v2/everything"`
	ExchangeURL string `env:"EXCHANGE_URL,default=https://api.exchangerate-api.com/v4/latest"`

	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT,default=10s"`

	// Lookup events; empty KafkaBrokers disables publishing
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC,default=city_lookups"`
	KafkaGroup   string   `env:"KAFKA_CONSUMER_GROUP,default=city_lookup_auditors"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes the config from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %s", cfg.UpstreamTimeout)
	}
	return &cfg, nil
}

// EventsEnabled reports whether lookup events should go to Kafka.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// SlogLevel maps LogLevel onto slog, falling back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction reports whether logs should be JSON.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
