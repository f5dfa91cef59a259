package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gometeo/citydash/internal/model"
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client calls the aggregation endpoints of a running backend.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "application/json")
	return &Client{http: client}
}

func (c *Client) Weather(ctx context.Context, city string) (*model.WeatherReport, error) {
	var out model.WeatherReport
	if err := c.get(ctx, "/api/weather", "city", city, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) News(ctx context.Context, city string) (*model.NewsDigest, error) {
	var out model.NewsDigest
	if err := c.get(ctx, "/api/news", "city", city, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Currency(ctx context.Context, base string) (*model.CurrencyTable, error) {
	var out model.CurrencyTable
	if err := c.get(ctx, "/api/currency", "base", base, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path, param, value string, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam(param, value).
		Get(path)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}

	if !resp.IsSuccess() {
		apiErr := &APIError{Status: resp.StatusCode()}
		var body model.ErrorResponse
		if json.Unmarshal(resp.Body(), &body) == nil {
			apiErr.Message = body.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}
