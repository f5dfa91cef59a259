package dashboard

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gometeo/citydash/internal/model"
)

var panelTitles = map[Panel]string{
	PanelWeather:  "Weather",
	PanelNews:     "News",
	PanelCurrency: "Rates",
}

// TextView renders the dashboard as plain text, one block per update.
type TextView struct {
	w io.Writer
}

func NewTextView(w io.Writer) *TextView {
	return &TextView{w: w}
}

func (t *TextView) printf(format string, args ...any) {
	fmt.Fprintf(t.w, format, args...)
}

func (t *TextView) SetLoading(loading bool) {
	if loading {
		t.printf("... loading\n")
	}
}

func (t *TextView) ShowBanner(message string) {
	t.printf("! %s\n", message)
}

func (t *TextView) ShowWeather(r model.WeatherReport) {
	t.printf("== Weather ==\n")
	t.printf("%s, %s  %.0f°C  %s\n", r.City, r.Country, math.Round(r.Temperature), r.Description)
	t.printf("Feels like %.0f°C | Humidity %d%% | Pressure %d hPa | Wind %v m/s | Rain (3h) %v mm\n",
		math.Round(r.FeelsLike), r.Humidity, r.Pressure, r.WindSpeed, r.Rain3h)
	t.printf("Coordinates %.2f, %.2f\n", r.Coordinates.Lat, r.Coordinates.Lon)
}

func (t *TextView) ShowMarker(m Marker) {
	t.printf("Map: %s\n", m.Label)
}

func (t *TextView) ShowNews(d model.NewsDigest) {
	t.printf("== News ==\n")
	for i, a := range d.Articles {
		t.printf("%d. %s\n", i+1, a.Title)
		desc := "No description available"
		if a.Description != nil && strings.TrimSpace(*a.Description) != "" {
			desc = *a.Description
		}
		t.printf("   %s\n", desc)
		t.printf("   %s • %s\n", a.Source, publishedDate(a.PublishedAt))
		t.printf("   %s\n", a.URL)
	}
}

func (t *TextView) ShowCurrency(c model.CurrencyTable) {
	t.printf("== Rates (base %s, updated %s) ==\n", c.Base, c.Date)
	for _, code := range model.TrackedCurrencies {
		if rate, ok := c.Rates[code]; ok {
			t.printf("%s %.4f\n", code, rate)
		}
	}
}

func (t *TextView) ShowPlaceholder(panel Panel, text string) {
	t.printf("== %s ==\n%s\n", panelTitles[panel], text)
}

// publishedDate trims an RFC 3339 timestamp to its date.
func publishedDate(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}
