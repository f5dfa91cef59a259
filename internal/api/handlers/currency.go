package handlers

import (
	"net/http"
	"strings"

	"github.com/gometeo/citydash/internal/model"
	"github.com/gometeo/citydash/internal/normalize"
	"github.com/gometeo/citydash/internal/upstream"
)

// GetCurrency handles GET /api/currency?base=. A blank base means USD.
func (h *LookupHandler) GetCurrency(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimSpace(r.URL.Query().Get("base"))
	if base == "" {
		base = upstream.DefaultBaseCurrency
	}
	lk := newLookup(model.KindCurrency, base)

	raw, err := h.currency.Latest(r.Context(), base)
	if err != nil {
		h.fail(w, r, lk, err)
		return
	}

	h.succeed(w, r, lk, normalize.Currency(raw))
}
