// Package normalize maps provider payloads onto the API response schema.
// Every function here is pure and total over a validated payload.
package normalize

import (
	"github.com/gometeo/citydash/internal/model"
	"github.com/gometeo/citydash/internal/upstream"
)

// Weather flattens an OpenWeatherMap payload. Missing rain data reads as 0.
func Weather(raw *upstream.OpenWeatherResponse) model.WeatherReport {
	report := model.WeatherReport{
		City:   raw.Name,
		Rain3h: rain3h(raw.Rain),
	}
	if raw.Sys != nil {
		report.Country = raw.Sys.Country
	}
	if raw.Main != nil {
		report.Temperature = raw.Main.Temp
		report.FeelsLike = raw.Main.FeelsLike
		report.Humidity = raw.Main.Humidity
		report.Pressure = raw.Main.Pressure
	}
	if raw.Wind != nil {
		report.WindSpeed = raw.Wind.Speed
	}
	if len(raw.Weather) > 0 {
		report.Description = raw.Weather[0].Description
		report.Icon = raw.Weather[0].Icon
	}
	if raw.Coord != nil {
		report.Coordinates = model.Coordinates{Lat: raw.Coord.Lat, Lon: raw.Coord.Lon}
	}
	return report
}

func rain3h(r *upstream.OpenWeatherRain) float64 {
	if r == nil || r.ThreeHour == nil || *r.ThreeHour < 0 {
		return 0
	}
	return *r.ThreeHour
}

// News keeps at most upstream.NewsPageSize articles in provider order.
func News(raw *upstream.NewsAPIResponse) model.NewsDigest {
	n := len(raw.Articles)
	if n > upstream.NewsPageSize {
		n = upstream.NewsPageSize
	}

	articles := make([]model.NewsArticle, 0, n)
	for _, a := range raw.Articles[:n] {
		articles = append(articles, model.NewsArticle{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
			Image:       a.URLToImage,
		})
	}
	return model.NewsDigest{Articles: articles}
}

// Currency picks the tracked codes out of the provider's full rate map.
// A tracked code the provider did not return is left out.
func Currency(raw *upstream.ExchangeRateResponse) model.CurrencyTable {
	rates := make(model.Rates, len(model.TrackedCurrencies))
	for _, code := range model.TrackedCurrencies {
		if rate, ok := raw.Rates[code]; ok {
			rates[code] = rate
		}
	}
	return model.CurrencyTable{
		Base:  raw.Base,
		Date:  raw.Date,
		Rates: rates,
	}
}
