package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/usecase/create_reservation"
)

const (
	msgInvalidRequest     = "некорректный формат запроса"
	msgParkingRequired    = "выберите парковку"
	msgParkingNotFound    = "парковка не найдена"
	msgServiceUnavailable = "сервис бронирования временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase  CreateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	// Даты разбирает use case после проверки обязательных полей и контактов
	result, err := h.useCase.Execute(r.Context(), &create_reservation.Request{
		ParkingID:    req.ParkingID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		VehiclePlate: req.VehiclePlate,
		VehicleModel: req.VehicleModel,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	})
	if err != nil {
		switch {
		case handlers.RespondValidationError(w, err):
			h.logger.Warn("POST /reservations - Validation failed: %v", err)

		case errors.Is(err, create_reservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Error: msgParkingRequired, Field: "parkingId"})

		case errors.Is(err, create_reservation.ErrParkingNotFound):
			h.logger.Warn("POST /reservations - Parking not found: parking_id=%s", req.ParkingID)
			handlers.RespondNotFound(w, msgParkingNotFound)

		case errors.Is(err, create_reservation.ErrServiceUnavailable):
			h.logger.Error("POST /reservations - Parking API unavailable, reservation rejected: parking_id=%s", req.ParkingID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgServiceUnavailable)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("POST /reservations - Parking API error: %v", err)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%s, parking_id=%s, total=%.2f",
		result.Reservation.ID, req.ParkingID, result.Quote.TotalPrice)

	handlers.RespondJSON(w, http.StatusCreated, CreateReservationResponse{
		Reservation:         handlers.FromDomainReservation(result.Reservation, h.location),
		ParkingName:         result.ParkingName,
		DurationHours:       result.Quote.DurationHours,
		TotalPrice:          result.Quote.TotalPrice,
		TotalPriceFormatted: calculator.FormatPrice(result.Quote.TotalPrice),
	})
}
