package handler

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Storage string `json:"storage"`
}

// Health handles GET /api/health. The database is pinged only when one is
// configured.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	storage := "seed"
	if h.db != nil {
		storage = "postgres"
		if err := h.db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(healthResponse{
				Status:  "unhealthy",
				Message: err.Error(),
				Storage: storage,
			})
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:  "ok",
		Message: "portfolio",
		Storage: storage,
	})
}
