package get_dashboard

import (
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// Stats сводные показатели
type Stats struct {
	TotalClients          int
	TotalParkings         int
	TotalReservations     int
	PendingReservations   int
	ConfirmedReservations int
	Revenue               float64
}

// Response данные панели администратора
type Response struct {
	Stats          Stats
	Recent         []domain.Reservation
	Upcoming       []domain.Reservation
	ParkingsSource parkingapi.Source
}
