package upstream

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gometeo/citydash/internal/config"
)

// DefaultBaseCurrency is used when no base code is given.
const DefaultBaseCurrency = "USD"

// CurrencyClient reads latest rates from exchangerate-api.com.
type CurrencyClient struct {
	http   *resty.Client
	url    string
	logger *slog.Logger
}

func NewCurrencyClient(cfg *config.Config, logger *slog.Logger) *CurrencyClient {
	return &CurrencyClient{
		http:   newRestyClient(cfg.UpstreamTimeout, logger),
		url:    strings.TrimRight(cfg.ExchangeURL, "/"),
		logger: logger,
	}
}

// Latest returns all rates against base, or DefaultBaseCurrency when base
// is blank.
func (c *CurrencyClient) Latest(ctx context.Context, base string) (*ExchangeRateResponse, error) {
	var out ExchangeRateResponse
	err := fetch(ctx, c.http, c.logger, request{
		provider:    "exchangerate-api",
		url:         c.url + "/{base}",
		pathParams:  map[string]string{"base": orDefault(base, DefaultBaseCurrency)},
		notFoundMsg: MsgCurrencyDataNotFound,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
