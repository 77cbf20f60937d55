package get_parking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/parkings"
)

const msgParkingNotFound = "парковка не найдена"

// ParkingResponse HTTP response model
type ParkingResponse struct {
	Parking handlers.ParkingDTO `json:"parking"`
	Source  string              `json:"source"`
}

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

// Handle GET /api/v1/parkings/{parkingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parkingID := mux.Vars(r)["parkingId"]

	result, err := h.service.GetByID(r.Context(), parkingID)
	if err != nil {
		switch {
		case errors.Is(err, parkings.ErrParkingNotFound):
			h.logger.Warn("GET /parkings/{id} - Parking not found: parking_id=%s", parkingID)
			handlers.RespondNotFound(w, msgParkingNotFound)

		default:
			h.logger.Error("GET /parkings/{id} - Failed to get parking: parking_id=%s, error=%v", parkingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ParkingResponse{
		Parking: handlers.FromDomainParking(result.Parking),
		Source:  string(result.Source),
	})
}
