package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/reservations"
)

const (
	msgInvalidRequest      = "некорректный формат запроса"
	msgInvalidStatus       = "статус должен быть confirmed или cancelled"
	msgReservationNotFound = "бронирование не найдено"
	msgStatusTransition    = "переход в этот статус недопустим"
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

// Handle PUT /api/v1/admin/reservations/{reservationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reservations/{id}/status - Invalid request body: reservation_id=%s, error=%v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	if fields := handlers.ValidateStruct(req); fields != nil {
		h.logger.Warn("PUT /admin/reservations/{id}/status - Invalid status: reservation_id=%s, status=%s", reservationID, req.Status)
		handlers.RespondInvalidFields(w, msgInvalidStatus, fields)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), reservationID, req.Status); err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("PUT /admin/reservations/{id}/status - Invalid status: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /admin/reservations/{id}/status - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrStatusTransition):
			h.logger.Warn("PUT /admin/reservations/{id}/status - Transition rejected: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondConflict(w, msgStatusTransition)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("PUT /admin/reservations/{id}/status - Parking API error: reservation_id=%s, error=%v", reservationID, err)

		default:
			h.logger.Error("PUT /admin/reservations/{id}/status - Failed to update status: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/reservations/{id}/status - Status updated: reservation_id=%s, status=%s", reservationID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, UpdateStatusResponse{ID: reservationID, Status: req.Status})
}
