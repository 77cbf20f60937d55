package domain

import "time"

// Client represents an administratively registered customer
// Не синхронизируется с Reservation: данные копируются при регистрации
type Client struct {
	ID    string
	Name  string
	Email string
	Phone string

	VehiclePlate string
	VehicleModel string

	ParkingID     *string
	StartDate     *time.Time
	EndDate       *time.Time
	DurationHours int
	TotalPrice    float64

	ReservationsCount int
}
