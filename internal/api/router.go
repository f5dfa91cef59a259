package api

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gometeo/citydash/internal/api/handlers"
)

// NewRouter wires the lookup endpoints, the static frontend and the JSON 404
// fallback. Middleware wraps the whole router so unmatched requests are
// logged and tagged too.
func NewRouter(h *handlers.LookupHandler, static fs.FS, logger *slog.Logger) http.Handler {
	router := mux.NewRouter()
	notAllowed := http.HandlerFunc(handlers.NotFound)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/weather", h.GetWeather).Methods(http.MethodGet)
	api.HandleFunc("/news", h.GetNews).Methods(http.MethodGet)
	api.HandleFunc("/currency", h.GetCurrency).Methods(http.MethodGet)
	api.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	api.Use(contentTypeMiddleware)
	api.MethodNotAllowedHandler = notAllowed

	router.MethodNotAllowedHandler = notAllowed
	if static != nil {
		router.NotFoundHandler = handlers.Static(static)
	} else {
		router.NotFoundHandler = notAllowed
	}

	return requestIDMiddleware(loggingMiddleware(logger)(router))
}
