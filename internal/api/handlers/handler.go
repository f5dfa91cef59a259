package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gometeo/citydash/internal/events"
	"github.com/gometeo/citydash/internal/model"
	"github.com/gometeo/citydash/internal/upstream"
)

type WeatherFetcher interface {
	Current(ctx context.Context, city string) (*upstream.OpenWeatherResponse, error)
}

type NewsFetcher interface {
	Latest(ctx context.Context, city string) (*upstream.NewsAPIResponse, error)
}

type CurrencyFetcher interface {
	Latest(ctx context.Context, base string) (*upstream.ExchangeRateResponse, error)
}

// LookupHandler serves the three lookup endpoints. It holds no per-request
// state.
type LookupHandler struct {
	weather  WeatherFetcher
	news     NewsFetcher
	currency CurrencyFetcher
	events   events.Publisher
	logger   *slog.Logger
}

func NewLookupHandler(weather WeatherFetcher, news NewsFetcher, currency CurrencyFetcher, publisher events.Publisher, logger *slog.Logger) *LookupHandler {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &LookupHandler{
		weather:  weather,
		news:     news,
		currency: currency,
		events:   publisher,
		logger:   logger,
	}
}

// lookup tracks one request from validation to response.
type lookup struct {
	kind  string
	query string
	start time.Time
}

func newLookup(kind, query string) lookup {
	return lookup{kind: kind, query: query, start: time.Now()}
}

// statusFor maps a failure kind onto the HTTP status returned to callers.
func statusFor(err error) int {
	switch upstream.KindOf(err) {
	case upstream.KindValidation:
		return http.StatusBadRequest
	case upstream.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *LookupHandler) succeed(w http.ResponseWriter, r *http.Request, lk lookup, data interface{}) {
	sendJSON(w, http.StatusOK, data)

	h.logger.Info("Lookup served",
		"kind", lk.kind,
		"query", lk.query,
		"duration_ms", time.Since(lk.start).Milliseconds())
	h.publish(r, lk, http.StatusOK)
}

// fail answers with the public message only; the wrapped detail stays in
// the log.
func (h *LookupHandler) fail(w http.ResponseWriter, r *http.Request, lk lookup, err error) {
	status := statusFor(err)
	sendError(w, status, upstream.MessageOf(err))

	args := []any{
		"kind", lk.kind,
		"query", lk.query,
		"status", status,
		"error", err,
		"duration_ms", time.Since(lk.start).Milliseconds(),
	}
	switch status {
	case http.StatusInternalServerError:
		h.logger.Error("Lookup failed", args...)
	default:
		h.logger.Warn("Lookup rejected", args...)
	}
	h.publish(r, lk, status)
}

func (h *LookupHandler) publish(r *http.Request, lk lookup, status int) {
	event := model.LookupEvent{
		ID:         RequestID(r.Context()),
		Kind:       lk.kind,
		Query:      lk.query,
		Status:     status,
		DurationMs: time.Since(lk.start).Milliseconds(),
		Timestamp:  time.Now().UTC(),
	}

	// The response is already written; a client hanging up must not drop
	// the event.
	ctx := context.WithoutCancel(r.Context())
	if err := h.events.Publish(ctx, event); err != nil {
		h.logger.Warn("Could not publish lookup event", "kind", lk.kind, "error", err)
	}
}
