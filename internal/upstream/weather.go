package upstream

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gometeo/citydash/internal/config"
)

// WeatherClient fetches current conditions from OpenWeatherMap.
type WeatherClient struct {
	http   *resty.Client
	url    string
	apiKey string
	logger *slog.Logger
}

func NewWeatherClient(cfg *config.Config, logger *slog.Logger) *WeatherClient {
	return &WeatherClient{
		http:   newRestyClient(cfg.UpstreamTimeout, logger),
		url:    cfg.WeatherURL,
		apiKey: cfg.WeatherAPIKey,
		logger: logger,
	}
}

// Current returns the raw current weather for city in metric units.
func (c *WeatherClient) Current(ctx context.Context, city string) (*OpenWeatherResponse, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &Error{Kind: KindValidation, Message: MsgCityRequired, Err: errEmptyCity}
	}

	var out OpenWeatherResponse
	err := fetch(ctx, c.http, c.logger, request{
		provider: "openweathermap",
		url:      c.url,
		query: map[string]string{
			"q":     city,
			"appid": c.apiKey,
			"units": "metric",
		},
		notFoundMsg: MsgCityNotFound,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
