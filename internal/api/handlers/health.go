package handlers

import (
	"net/http"
	"time"

	"github.com/gometeo/citydash/internal/model"
)

// HealthCheck reports liveness and which event sink is active.
func (h *LookupHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, model.HealthResponse{
		Status: "ok",
		Time:   time.Now().Format(time.RFC3339),
		Events: h.events.Name(),
	})
}
