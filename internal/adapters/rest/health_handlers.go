package rest

import (
	"net/http"

	"listing-service/internal/core/domain"
)

type HealthHandlers struct {
	storeHealth *domain.StoreHealth
}

func NewHealthHandlers(storeHealth *domain.StoreHealth) *HealthHandlers {
	return &HealthHandlers{storeHealth: storeHealth}
}

// GetHealth handles GET /api/health. The service reports ok even when the
// store is degraded; the fallback keeps the public site serving.
func (h *HealthHandlers) GetHealth(w http.ResponseWriter, r *http.Request) {
	RespondWithData(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Store:  h.storeHealth.Status(),
	})
}
