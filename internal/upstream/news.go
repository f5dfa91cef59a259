package upstream

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/gometeo/citydash/internal/config"
)

const (
	// DefaultNewsQuery is searched when no city is given.
	DefaultNewsQuery = "world"
	// NewsPageSize caps the number of articles per lookup.
	NewsPageSize = 5
)

// NewsClient searches NewsAPI for recent English articles.
type NewsClient struct {
	http   *resty.Client
	url    string
	apiKey string
	logger *slog.Logger
}

func NewNewsClient(cfg *config.Config, logger *slog.Logger) *NewsClient {
	return &NewsClient{
		http:   newRestyClient(cfg.UpstreamTimeout, logger),
		url:    cfg.NewsURL,
		apiKey: cfg.NewsAPIKey,
		logger: logger,
	}
}

// Latest returns the newest articles mentioning city, or DefaultNewsQuery
// when city is blank.
func (c *NewsClient) Latest(ctx context.Context, city string) (*NewsAPIResponse, error) {
	var out NewsAPIResponse
	err := fetch(ctx, c.http, c.logger, request{
		provider: "newsapi",
		url:      c.url,
		query: map[string]string{
			"q":        orDefault(city, DefaultNewsQuery),
			"language": "en",
			"sortBy":   "publishedAt",
			"pageSize": strconv.Itoa(NewsPageSize),
			"apiKey":   c.apiKey,
		},
		notFoundMsg: MsgNewsNotFound,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
