package get_dashboard

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
)

type Handler struct {
	useCase  DashboardUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase DashboardUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("GET /admin/dashboard - Parking API error: %v", err)
			return
		}
		h.logger.Error("GET /admin/dashboard - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	s := result.Stats
	handlers.RespondJSON(w, http.StatusOK, DashboardResponse{
		Stats: StatsDTO{
			TotalClients:          s.TotalClients,
			TotalParkings:         s.TotalParkings,
			TotalReservations:     s.TotalReservations,
			PendingReservations:   s.PendingReservations,
			ConfirmedReservations: s.ConfirmedReservations,
			Revenue:               s.Revenue,
			RevenueFormatted:      calculator.FormatPrice(s.Revenue),
		},
		Recent:         handlers.FromDomainReservations(result.Recent, h.location),
		Upcoming:       handlers.FromDomainReservations(result.Upcoming, h.location),
		ParkingsSource: string(result.ParkingsSource),
	})
}
