package create_reservation

import (
	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// Request входные данные для создания бронирования
type Request struct {
	ParkingID    string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	VehiclePlate string
	VehicleModel string
	StartDate    string // datetime-local или RFC3339, разбирается после проверки контактов
	EndDate      string
}

// Response созданное бронирование и примененный расчет
type Response struct {
	Reservation *domain.Reservation
	Quote       calculator.Quote
	ParkingName string
}
