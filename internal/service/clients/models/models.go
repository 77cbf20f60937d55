package models

import "time"

// CreateClientRequest данные нового клиента
// Даты необязательны; если заданы обе и указана парковка, считаются длительность и стоимость
type CreateClientRequest struct {
	Name         string
	Email        string
	Phone        string
	VehiclePlate string
	VehicleModel string
	ParkingID    string
	StartDate    *time.Time
	EndDate      *time.Time
}
