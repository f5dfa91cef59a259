package model

import "time"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the /api/health payload.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Events string `json:"events"`
}

// Lookup kinds, one per endpoint.
const (
	KindWeather  = "weather"
	KindNews     = "news"
	KindCurrency = "currency"
)

// LookupEvent summarises one served lookup. It goes through Kafka and never
// carries upstream payloads.
type LookupEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Query      string    `json:"query"`
	Status     int       `json:"status"`
	DurationMs int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}
