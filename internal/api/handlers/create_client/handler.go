package create_client

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/clients"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/clients/models"
)

const (
	msgInvalidRequest  = "некорректный формат запроса"
	msgInvalidDate     = "некорректный формат даты"
	msgParkingNotFound = "парковка не найдена"
)

type Handler struct {
	service  ClientService
	location *time.Location
	logger   Logger
}

func NewHandler(service ClientService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	start, err := handlers.ParseOptionalDateTime(req.StartDate, h.location)
	if err != nil {
		h.logger.Warn("POST /admin/clients - Invalid startDate: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Error: msgInvalidDate, Field: calculator.FieldStartDate})
		return
	}
	end, err := handlers.ParseOptionalDateTime(req.EndDate, h.location)
	if err != nil {
		h.logger.Warn("POST /admin/clients - Invalid endDate: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, handlers.ErrorResponse{Error: msgInvalidDate, Field: calculator.FieldEndDate})
		return
	}

	client, err := h.service.Create(r.Context(), &models.CreateClientRequest{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		VehiclePlate: req.VehiclePlate,
		VehicleModel: req.VehicleModel,
		ParkingID:    req.ParkingID,
		StartDate:    start,
		EndDate:      end,
	})
	if err != nil {
		switch {
		case handlers.RespondValidationError(w, err):
			h.logger.Warn("POST /admin/clients - Validation failed: %v", err)

		case errors.Is(err, clients.ErrParkingNotFound):
			h.logger.Warn("POST /admin/clients - Parking not found: parking_id=%s", req.ParkingID)
			handlers.RespondNotFound(w, msgParkingNotFound)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("POST /admin/clients - Parking API error: %v", err)

		default:
			h.logger.Error("POST /admin/clients - Failed to create client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/clients - Client created: client_id=%s", client.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainClient(client))
}
