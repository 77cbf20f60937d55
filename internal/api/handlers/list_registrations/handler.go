package list_registrations

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
)

// RegistrationDTO запись журнала регистраций
type RegistrationDTO struct {
	ReservationID string `json:"reservationId"`
	ClientID      string `json:"clientId"`
	RegisteredAt  string `json:"registeredAt"`
}

// RegistrationListResponse HTTP response model
type RegistrationListResponse struct {
	Registrations []RegistrationDTO `json:"registrations"`
}

type Handler struct {
	ledger RegistrationLedger
	logger Logger
}

func NewHandler(ledger RegistrationLedger, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.ledger.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/registrations - Failed to list registrations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := RegistrationListResponse{Registrations: make([]RegistrationDTO, 0, len(registrations))}
	for _, reg := range registrations {
		resp.Registrations = append(resp.Registrations, RegistrationDTO{
			ReservationID: reg.ReservationID,
			ClientID:      reg.ClientID,
			RegisteredAt:  reg.RegisteredAt.UTC().Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
