package get_status

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
)

// StatusResponse доступность parking API
type StatusResponse struct {
	Available bool `json:"available"`
}

type Handler struct {
	prober StatusProber
	logger Logger
}

func NewHandler(prober StatusProber, logger Logger) *Handler {
	return &Handler{
		prober: prober,
		logger: logger,
	}
}

// Handle GET /api/v1/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	available := h.prober.CheckAvailability(r.Context())
	if !available {
		h.logger.Warn("GET /status - parking API unavailable")
	}
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{Available: available})
}
