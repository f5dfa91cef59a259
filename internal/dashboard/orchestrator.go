// Package dashboard drives the city dashboard: one search fetches weather
// and news side by side, and rates are loaded once at start.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gometeo/citydash/internal/model"
)

// User facing texts.
const (
	MsgEmptyCity       = "Please enter a city name"
	MsgWeatherFallback = "Failed to fetch weather data"
	MsgNewsFallback    = "Failed to fetch news"
	MsgRatesFallback   = "Failed to fetch currency data"

	PlaceholderWeatherFailed  = "Failed to load weather data"
	PlaceholderNewsFailed     = "Failed to load news"
	PlaceholderCurrencyFailed = "Failed to load currency data"
	PlaceholderNoNews         = "No news found for this city"
)

// DefaultBase is the base currency loaded at start.
const DefaultBase = "USD"

// API is the backend as seen by the dashboard.
type API interface {
	Weather(ctx context.Context, city string) (*model.WeatherReport, error)
	News(ctx context.Context, city string) (*model.NewsDigest, error)
	Currency(ctx context.Context, base string) (*model.CurrencyTable, error)
}

// View renders what the orchestrator decides. Calls are never concurrent.
type View interface {
	SetLoading(loading bool)
	ShowBanner(message string)
	ShowWeather(report model.WeatherReport)
	ShowMarker(marker Marker)
	ShowNews(digest model.NewsDigest)
	ShowCurrency(table model.CurrencyTable)
	ShowPlaceholder(panel Panel, text string)
}

type Orchestrator struct {
	api    API
	view   View
	logger *slog.Logger
	now    func() time.Time

	// serialises View calls from the two fetch goroutines
	mu sync.Mutex
}

func New(api API, view View, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{api: api, view: view, logger: logger, now: time.Now}
}

func (o *Orchestrator) render(fn func(v View)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(o.view)
}

func (o *Orchestrator) banner(st State, message string) State {
	o.render(func(v View) { v.ShowBanner(message) })
	st.Banner = message
	st.BannerUntil = o.now().Add(BannerTTL)
	return st
}

// messageOf prefers the backend's error text over the generic fallback.
func messageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Search looks up weather and news for input. Blank input only raises a
// banner. Both requests run at once, each panel updates as its request
// settles, and the returned state is always Idle.
func (o *Orchestrator) Search(ctx context.Context, st State, input string) State {
	city := strings.TrimSpace(input)
	if city == "" {
		return o.banner(st, MsgEmptyCity)
	}

	st.Phase = Loading
	o.render(func(v View) { v.SetLoading(true) })
	defer o.render(func(v View) { v.SetLoading(false) })

	var (
		wg         sync.WaitGroup
		report     *model.WeatherReport
		digest     *model.NewsDigest
		weatherErr error
		newsErr    error
	)
	wg.Add(2)

	go func() {
		defer wg.Done()
		report, weatherErr = o.api.Weather(ctx, city)
		o.render(func(v View) {
			if weatherErr != nil {
				v.ShowPlaceholder(PanelWeather, PlaceholderWeatherFailed)
				return
			}
			v.ShowWeather(*report)
			v.ShowMarker(markerFor(report))
		})
	}()

	go func() {
		defer wg.Done()
		digest, newsErr = o.api.News(ctx, city)
		o.render(func(v View) {
			switch {
			case newsErr != nil:
				v.ShowPlaceholder(PanelNews, PlaceholderNewsFailed)
			case len(digest.Articles) == 0:
				v.ShowPlaceholder(PanelNews, PlaceholderNoNews)
			default:
				v.ShowNews(*digest)
			}
		})
	}()

	wg.Wait()

	if weatherErr != nil {
		o.logger.Warn("Weather lookup failed", "city", city, "error", weatherErr)
		st = o.banner(st, messageOf(weatherErr, MsgWeatherFallback))
	} else {
		m := markerFor(report)
		st.Weather = report
		st.Marker = &m
	}

	if newsErr != nil {
		o.logger.Warn("News lookup failed", "city", city, "error", newsErr)
		st = o.banner(st, messageOf(newsErr, MsgNewsFallback))
	} else {
		st.News = digest
	}

	st.Phase = Idle
	return st
}

// LoadCurrency fetches the DefaultBase rate table once.
func (o *Orchestrator) LoadCurrency(ctx context.Context, st State) State {
	table, err := o.api.Currency(ctx, DefaultBase)
	if err != nil {
		o.logger.Warn("Currency lookup failed", "error", err)
		o.render(func(v View) { v.ShowPlaceholder(PanelCurrency, PlaceholderCurrencyFailed) })
		return o.banner(st, messageOf(err, MsgRatesFallback))
	}

	o.render(func(v View) { v.ShowCurrency(*table) })
	st.Currency = table
	return st
}

func markerFor(r *model.WeatherReport) Marker {
	return Marker{
		Lat:   r.Coordinates.Lat,
		Lon:   r.Coordinates.Lon,
		Label: fmt.Sprintf("%s (Lat: %v, Lon: %v)", r.City, r.Coordinates.Lat, r.Coordinates.Lon),
	}
}
