package list_parkings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

const msgInvalidActiveFilter = "некорректный параметр active"

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

// Handle GET /api/v1/parkings
// Query params: active=true - только активные парковки (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := false
	if v := r.URL.Query().Get("active"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /parkings - Invalid active filter: %s", v)
			handlers.RespondBadRequest(w, msgInvalidActiveFilter)
			return
		}
		activeOnly = parsed
	}

	result := h.service.List(r.Context())

	parkings := result.Parkings
	if activeOnly {
		parkings = filterActive(parkings)
	}

	handlers.RespondJSON(w, http.StatusOK, ParkingListResponse{
		Parkings: handlers.FromDomainParkings(parkings),
		Source:   string(result.Source),
	})
}

func filterActive(parkings []domain.Parking) []domain.Parking {
	active := make([]domain.Parking, 0, len(parkings))
	for _, p := range parkings {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}
