package delete_parking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
)

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/parkings/{parkingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parkingID := mux.Vars(r)["parkingId"]

	if err := h.service.Delete(r.Context(), parkingID); err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("DELETE /admin/parkings/{id} - Parking API error: parking_id=%s, error=%v", parkingID, err)
			return
		}
		h.logger.Error("DELETE /admin/parkings/{id} - Failed to delete parking: parking_id=%s, error=%v", parkingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/parkings/{id} - Parking deleted: parking_id=%s", parkingID)
	handlers.RespondNoContent(w)
}
