package list_clients

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
)

// ClientListResponse HTTP response model
type ClientListResponse struct {
	Clients []handlers.ClientDTO `json:"clients"`
}

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clients, err := h.service.List(r.Context())
	if err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("GET /admin/clients - Parking API error: %v", err)
			return
		}
		h.logger.Error("GET /admin/clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ClientListResponse{Clients: handlers.FromDomainClients(clients)})
}
