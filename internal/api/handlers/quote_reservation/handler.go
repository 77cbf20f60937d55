package quote_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/usecase/quote_reservation"
)

const (
	msgInvalidRequest  = "некорректный формат запроса"
	msgInvalidFields   = "заполните парковку и даты"
	msgInvalidDate     = "некорректный формат даты"
	msgParkingNotFound = "парковка не найдена"
)

type Handler struct {
	useCase  QuoteUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase QuoteUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations/quote
// Только расчет, бронирование не создается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	if fields := handlers.ValidateStruct(req); fields != nil {
		h.logger.Warn("POST /reservations/quote - Invalid fields: %v", fields)
		handlers.RespondInvalidFields(w, msgInvalidFields, fields)
		return
	}

	start, err := handlers.ParseDateTime(req.StartDate, h.location)
	if err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid startDate: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Error: msgInvalidDate, Field: "startDate"})
		return
	}
	end, err := handlers.ParseDateTime(req.EndDate, h.location)
	if err != nil {
		h.logger.Warn("POST /reservations/quote - Invalid endDate: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Error: msgInvalidDate, Field: "endDate"})
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quote_reservation.Request{
		ParkingID: req.ParkingID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		switch {
		case handlers.RespondValidationError(w, err):
			h.logger.Warn("POST /reservations/quote - Invalid interval: parking_id=%s", req.ParkingID)

		case errors.Is(err, quote_reservation.ErrParkingNotFound):
			h.logger.Warn("POST /reservations/quote - Parking not found: parking_id=%s", req.ParkingID)
			handlers.RespondNotFound(w, msgParkingNotFound)

		default:
			h.logger.Error("POST /reservations/quote - Failed to compute quote: parking_id=%s, error=%v", req.ParkingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, QuoteResponse{
		ParkingID:           result.ParkingID,
		PricePerHour:        result.PricePerHour,
		DurationHours:       result.DurationHours,
		TotalPrice:          result.TotalPrice,
		TotalPriceFormatted: result.TotalPriceFormatted,
	})
}
