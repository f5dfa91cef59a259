package handlers

import (
	"net/http"
	"strings"

	"github.com/gometeo/citydash/internal/model"
	"github.com/gometeo/citydash/internal/normalize"
	"github.com/gometeo/citydash/internal/upstream"
)

// GetNews handles GET /api/news?city=. A blank city searches world news.
func (h *LookupHandler) GetNews(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		city = upstream.DefaultNewsQuery
	}
	lk := newLookup(model.KindNews, city)

	raw, err := h.news.Latest(r.Context(), city)
	if err != nil {
		h.fail(w, r, lk, err)
		return
	}

	h.succeed(w, r, lk, normalize.News(raw))
}
