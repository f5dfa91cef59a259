package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/gometeo/citydash/internal/api/handlers"
	"github.com/gometeo/citydash/internal/model"
	"github.com/gometeo/citydash/internal/upstream"
	"github.com/gometeo/citydash/web"
)

type stubWeather struct{}

func (stubWeather) Current(_ context.Context, city string) (*upstream.OpenWeatherResponse, error) {
	if city == "Atlantis" {
		return nil, &upstream.Error{Kind: upstream.KindNotFound, Message: upstream.MsgCityNotFound}
	}
	return &upstream.OpenWeatherResponse{
		Name:    city,
		Sys:     &upstream.OpenWeatherSys{Country: "FR"},
		Main:    &upstream.OpenWeatherMain{Temp: 18.5},
		Wind:    &upstream.OpenWeatherWind{},
		Weather: []upstream.OpenWeatherCondition{{Description: "clear sky"}},
		Coord:   &upstream.OpenWeatherCoord{Lat: 48.85, Lon: 2.35},
	}, nil
}

type stubNews struct{}

func (stubNews) Latest(context.Context, string) (*upstream.NewsAPIResponse, error) {
	return &upstream.NewsAPIResponse{Articles: []upstream.NewsAPIArticle{}}, nil
}

type stubCurrency struct{}

func (stubCurrency) Latest(_ context.Context, base string) (*upstream.ExchangeRateResponse, error) {
	return &upstream.ExchangeRateResponse{Base: base, Date: "2024-05-01", Rates: map[string]float64{"USD": 1}}, nil
}

type capturePublisher struct {
	events []model.LookupEvent
}

func (p *capturePublisher) Publish(_ context.Context, e model.LookupEvent) error {
	p.events = append(p.events, e)
	return nil
}

func (p *capturePublisher) Name() string { return "capture" }
func (p *capturePublisher) Close() error { return nil }

func newTestRouter(pub *capturePublisher, logs io.Writer) http.Handler {
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	h := handlers.NewLookupHandler(stubWeather{}, stubNews{}, stubCurrency{}, pub, logger)
	return NewRouter(h, web.Static(), logger)
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body model.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", rec.Body.String(), err)
	}
	return body.Error
}

func TestRouterLookups(t *testing.T) {
	router := newTestRouter(&capturePublisher{}, io.Discard)

	cases := []struct {
		target string
		status int
	}{
		{"/api/weather?city=Paris", http.StatusOK},
		{"/api/weather?city=", http.StatusBadRequest},
		{"/api/weather?city=Atlantis", http.StatusNotFound},
		{"/api/news?city=", http.StatusOK},
		{"/api/currency?base=EUR", http.StatusOK},
		{"/api/health", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			rec := serve(router, http.MethodGet, tc.target)
			if rec.Code != tc.status {
				t.Errorf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected JSON content type, got %q", ct)
			}
		})
	}
}

func TestRouterWeatherNotFoundBody(t *testing.T) {
	router := newTestRouter(&capturePublisher{}, io.Discard)

	rec := serve(router, http.MethodGet, "/api/weather?city=Atlantis")
	if got := errorOf(t, rec); got != "City not found" {
		t.Errorf("expected City not found, got %q", got)
	}
}

func TestRouterUnmatchedRoutes(t *testing.T) {
	router := newTestRouter(&capturePublisher{}, io.Discard)

	cases := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/unknown"},
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/api"},
		{http.MethodPost, "/api/weather?city=Paris"},
		{http.MethodDelete, "/api/currency"},
		{http.MethodPost, "/"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := serve(router, tc.method, tc.target)
			if rec.Code != http.StatusNotFound {
				t.Errorf("expected 404, got %d", rec.Code)
			}
			if got := errorOf(t, rec); got != handlers.MsgEndpointNotFound {
				t.Errorf("expected %q, got %q", handlers.MsgEndpointNotFound, got)
			}
		})
	}
}

func TestRouterServesFrontend(t *testing.T) {
	router := newTestRouter(&capturePublisher{}, io.Discard)

	for target, marker := range map[string]string{
		"/":          "cityInput",
		"/app.js":    "loadWeather",
		"/style.css": ".panel",
	} {
		rec := serve(router, http.MethodGet, target)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", target, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), marker) {
			t.Errorf("%s: body does not contain %q", target, marker)
		}
	}
}

func TestRouterRequestID(t *testing.T) {
	pub := &capturePublisher{}
	var logs bytes.Buffer
	router := newTestRouter(pub, &logs)

	rec := serve(router, http.MethodGet, "/api/weather?city=Paris")
	id := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID request id, got %q", id)
	}
	if len(pub.events) != 1 || pub.events[0].ID != id {
		t.Errorf("expected event with id %s, got %+v", id, pub.events)
	}
	if !strings.Contains(logs.String(), id) {
		t.Error("access log should carry the request id")
	}

	// unmatched routes are tagged too
	rec = serve(router, http.MethodGet, "/missing")
	if rec.Header().Get(RequestIDHeader) == "" {
		t.Error("404 responses should carry a request id")
	}
}

func TestRouterReusesCallerRequestID(t *testing.T) {
	router := newTestRouter(&capturePublisher{}, io.Discard)
	want := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, want)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("malformed request id should be replaced")
	}
}

func TestRouterAccessLogStatus(t *testing.T) {
	var logs bytes.Buffer
	router := newTestRouter(&capturePublisher{}, &logs)

	serve(router, http.MethodGet, "/api/weather?city=")

	found := false
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		if entry["msg"] == "HTTP request" {
			found = true
			if entry["status"] != float64(http.StatusBadRequest) {
				t.Errorf("expected status 400 in access log, got %v", entry["status"])
			}
		}
	}
	if !found {
		t.Error("no access log entry written")
	}
}
