package list_reservations

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/reservations"
)

const msgInvalidStatus = "некорректный статус: допустимы pending, confirmed, cancelled"

// ReservationListResponse HTTP response model
type ReservationListResponse struct {
	Reservations []handlers.ReservationDTO `json:"reservations"`
}

type Handler struct {
	service  ReservationService
	location *time.Location
	logger   Logger
}

func NewHandler(service ReservationService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/reservations
// Query params: status=pending|confirmed|cancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	list, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidStatus):
			h.logger.Warn("GET /admin/reservations - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("GET /admin/reservations - Parking API error: %v", err)

		default:
			h.logger.Error("GET /admin/reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReservationListResponse{
		Reservations: handlers.FromDomainReservations(list, h.location),
	})
}
