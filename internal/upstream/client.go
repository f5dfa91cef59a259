package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// payload is a decoded provider body that can check it has what the
// normalizers need.
type payload interface {
	validate() error
}

// newRestyClient builds the HTTP client shared by one provider: bounded
// timeout, no retries.
func newRestyClient(timeout time.Duration, logger *slog.Logger) *resty.Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(0)
	client.SetHeader("Accept", "application/json")
	client.SetLogger(restyLogger{logger: logger})
	return client
}

// request describes one provider call.
type request struct {
	provider    string
	url         string
	query       map[string]string
	pathParams  map[string]string
	notFoundMsg string
}

// fetch performs one GET and decodes the body into out. A non-2xx status
// becomes a KindNotFound error carrying notFoundMsg.
func fetch(ctx context.Context, client *resty.Client, logger *slog.Logger, r request, out payload) error {
	start := time.Now()

	req := client.R().SetContext(ctx)
	if r.query != nil {
		req.SetQueryParams(r.query)
	}
	if r.pathParams != nil {
		req.SetPathParams(r.pathParams)
	}

	resp, err := req.Get(r.url)
	if err != nil {
		return serverError(fmt.Errorf("%s request failed: %w", r.provider, err))
	}

	logger.Debug("Upstream response",
		"provider", r.provider,
		"status", resp.StatusCode(),
		"duration_ms", time.Since(start).Milliseconds())

	if !resp.IsSuccess() {
		return &Error{
			Kind:    KindNotFound,
			Message: r.notFoundMsg,
			Err:     fmt.Errorf("%s returned status %d", r.provider, resp.StatusCode()),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return serverError(fmt.Errorf("failed to parse %s response: %w", r.provider, err))
	}
	if err := out.validate(); err != nil {
		return serverError(err)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

var errEmptyCity = errors.New("empty city")

// restyLogger routes resty's own diagnostics into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error("resty", "detail", fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn("resty", "detail", fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug("resty", "detail", fmt.Sprintf(format, v...))
}
