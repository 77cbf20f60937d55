package list_parkings

import "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"

// ParkingListResponse HTTP response model
type ParkingListResponse struct {
	Parkings []handlers.ParkingDTO `json:"parkings"`
	Source   string                `json:"source"`
}
