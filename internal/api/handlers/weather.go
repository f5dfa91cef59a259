package handlers

import (
	"net/http"
	"strings"

	"github.com/gometeo/citydash/internal/model"
	"github.com/gometeo/citydash/internal/normalize"
	"github.com/gometeo/citydash/internal/upstream"
)

// GetWeather handles GET /api/weather?city=.
func (h *LookupHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	lk := newLookup(model.KindWeather, city)

	if city == "" {
		h.fail(w, r, lk, &upstream.Error{Kind: upstream.KindValidation, Message: upstream.MsgCityRequired})
		return
	}

	raw, err := h.weather.Current(r.Context(), city)
	if err != nil {
		h.fail(w, r, lk, err)
		return
	}

	h.succeed(w, r, lk, normalize.Weather(raw))
}
