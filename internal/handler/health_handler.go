package handlers

import (
	"log/slog"
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status, err := h.StatusService.Check(r.Context())
	if err != nil {
		slog.WarnContext(r.Context(), "health check failed", "error", err)
		WriteError(w, "Service unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok", Tables: status.Tables}, http.StatusOK)
}
