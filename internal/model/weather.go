package model

// Coordinates is a point on the map in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// WeatherReport is the current weather for one city as served by /api/weather.
type WeatherReport struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	Temperature float64     `json:"temperature"`
	FeelsLike   float64     `json:"feels_like"`
	Humidity    int         `json:"humidity"`
	Pressure    int         `json:"pressure"`
	WindSpeed   float64     `json:"wind_speed"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Coordinates Coordinates `json:"coordinates"`
	Rain3h      float64     `json:"rain_3h"`
}
