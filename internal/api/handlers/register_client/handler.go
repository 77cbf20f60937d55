package register_client

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/usecase/register_client"
)

const (
	msgReservationNotFound = "бронирование не найдено"
	msgNotConfirmed        = "клиентом можно зарегистрировать только подтвержденное бронирование"
	msgAlreadyRegistered   = "бронирование уже зарегистрировано как клиент"
)

type Handler struct {
	useCase RegisterClientUseCase
	logger  Logger
}

func NewHandler(useCase RegisterClientUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations/{reservationId}/client
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	result, err := h.useCase.Execute(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, register_client.ErrReservationNotFound):
			h.logger.Warn("POST /admin/reservations/{id}/client - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, register_client.ErrNotConfirmed):
			h.logger.Warn("POST /admin/reservations/{id}/client - Reservation not confirmed: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgNotConfirmed)

		case errors.Is(err, register_client.ErrAlreadyRegistered):
			h.logger.Warn("POST /admin/reservations/{id}/client - Already registered: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgAlreadyRegistered)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("POST /admin/reservations/{id}/client - Parking API error: reservation_id=%s, error=%v", reservationID, err)

		default:
			h.logger.Error("POST /admin/reservations/{id}/client - Failed to register client: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations/{id}/client - Client registered: reservation_id=%s, client_id=%s",
		reservationID, result.Client.ID)

	handlers.RespondJSON(w, http.StatusCreated, RegisterClientResponse{
		Client:        handlers.FromDomainClient(result.Client),
		ReservationID: result.Registration.ReservationID,
		RegisteredAt:  result.Registration.RegisteredAt.UTC().Format(time.RFC3339),
	})
}
