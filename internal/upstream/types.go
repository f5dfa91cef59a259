package upstream

import "errors"

// OpenWeatherResponse is the subset of the OpenWeatherMap current weather
// payload we read. Sections are pointers so a missing one can be told apart
// from a zero value.
type OpenWeatherResponse struct {
	Name    string                 `json:"name"`
	Sys     *OpenWeatherSys        `json:"sys"`
	Main    *OpenWeatherMain       `json:"main"`
	Wind    *OpenWeatherWind       `json:"wind"`
	Weather []OpenWeatherCondition `json:"weather"`
	Coord   *OpenWeatherCoord      `json:"coord"`
	Rain    *OpenWeatherRain       `json:"rain"`
}

type OpenWeatherSys struct {
	Country string `json:"country"`
}

type OpenWeatherMain struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Pressure  int     `json:"pressure"`
}

type OpenWeatherWind struct {
	Speed float64 `json:"speed"`
}

type OpenWeatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type OpenWeatherCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// OpenWeatherRain holds precipitation volumes; 1h and 3h are both optional.
type OpenWeatherRain struct {
	OneHour   *float64 `json:"1h"`
	ThreeHour *float64 `json:"3h"`
}

func (r *OpenWeatherResponse) validate() error {
	switch {
	case r.Main == nil:
		return errors.New("weather payload has no main section")
	case r.Sys == nil:
		return errors.New("weather payload has no sys section")
	case r.Wind == nil:
		return errors.New("weather payload has no wind section")
	case r.Coord == nil:
		return errors.New("weather payload has no coordinates")
	case len(r.Weather) == 0:
		return errors.New("weather payload has no conditions")
	}
	return nil
}

// NewsAPIResponse is the NewsAPI /v2/everything payload.
type NewsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []NewsAPIArticle `json:"articles"`
}

type NewsAPISource struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

type NewsAPIArticle struct {
	Source      NewsAPISource `json:"source"`
	Author      *string       `json:"author"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	URL         string        `json:"url"`
	URLToImage  *string       `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
}

func (r *NewsAPIResponse) validate() error {
	if r.Articles == nil {
		return errors.New("news payload has no articles")
	}
	return nil
}

// ExchangeRateResponse is the exchangerate-api.com v4 payload.
type ExchangeRateResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func (r *ExchangeRateResponse) validate() error {
	if r.Rates == nil {
		return errors.New("exchange payload has no rates")
	}
	return nil
}
