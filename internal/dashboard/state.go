package dashboard

import (
	"time"

	"github.com/gometeo/citydash/internal/model"
)

// BannerTTL is how long an error banner stays up.
const BannerTTL = 5 * time.Second

// Phase is the orchestrator's UI state.
type Phase int

const (
	Idle Phase = iota
	Loading
)

func (p Phase) String() string {
	if p == Loading {
		return "loading"
	}
	return "idle"
}

// Panel names one region of the dashboard.
type Panel int

const (
	PanelWeather Panel = iota
	PanelNews
	PanelCurrency
)

func (p Panel) String() string {
	switch p {
	case PanelWeather:
		return "weather"
	case PanelNews:
		return "news"
	default:
		return "currency"
	}
}

// Marker is the single map pin, placed at the last successful weather
// lookup.
type Marker struct {
	Lat   float64
	Lon   float64
	Label string
}

// State is everything the dashboard shows. The orchestrator takes a State
// and returns the next one; nothing is kept between calls.
type State struct {
	Phase    Phase
	Marker   *Marker
	Weather  *model.WeatherReport
	News     *model.NewsDigest
	Currency *model.CurrencyTable

	Banner      string
	BannerUntil time.Time
}

// ActiveBanner returns the banner text if it has not expired at now.
func (s State) ActiveBanner(now time.Time) string {
	if s.Banner == "" || !now.Before(s.BannerUntil) {
		return ""
	}
	return s.Banner
}
