package create_reservation

import "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"

// CreateReservationRequest HTTP request model
// Обязательность полей проверяет use case, чтобы сохранить порядок ошибок формы
type CreateReservationRequest struct {
	ParkingID    string `json:"parkingId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	VehiclePlate string `json:"vehiclePlate"`
	VehicleModel string `json:"vehicleModel"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation         handlers.ReservationDTO `json:"reservation"`
	ParkingName         string                  `json:"parkingName"`
	DurationHours       int                     `json:"durationHours"`
	TotalPrice          float64                 `json:"totalPrice"`
	TotalPriceFormatted string                  `json:"totalPriceFormatted"`
}
