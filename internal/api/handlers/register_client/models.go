package register_client

import "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"

// RegisterClientResponse HTTP response model
type RegisterClientResponse struct {
	Client        handlers.ClientDTO `json:"client"`
	ReservationID string             `json:"reservationId"`
	RegisteredAt  string             `json:"registeredAt"`
}
