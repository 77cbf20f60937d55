package delete_client

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
)

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

// Handle DELETE /api/v1/admin/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	if err := h.service.Delete(r.Context(), clientID); err != nil {
		if handlers.RespondUpstreamError(w, err) {
			h.logger.Warn("DELETE /admin/clients/{id} - Parking API error: client_id=%s, error=%v", clientID, err)
			return
		}
		h.logger.Error("DELETE /admin/clients/{id} - Failed to delete client: client_id=%s, error=%v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/clients/{id} - Client deleted: client_id=%s", clientID)
	handlers.RespondNoContent(w)
}
