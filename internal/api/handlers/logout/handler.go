package logout

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
)

type Handler struct {
	service AuthService
}

func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	handlers.RespondNoContent(w)
}
