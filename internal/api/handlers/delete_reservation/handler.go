package delete_reservation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	if err := h.service.Delete(r.Context(), reservationID); err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("DELETE /admin/reservations/{id} - Parking API error: reservation_id=%s, error=%v", reservationID, err)
			return
		}
		h.logger.Error("DELETE /admin/reservations/{id} - Failed to delete reservation: reservation_id=%s, error=%v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/reservations/{id} - Reservation deleted: reservation_id=%s", reservationID)
	handlers.RespondNoContent(w)
}
