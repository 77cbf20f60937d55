package create_client

// CreateClientRequest HTTP request model
// Даты необязательны: datetime-local или RFC3339
type CreateClientRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	VehiclePlate string `json:"vehiclePlate"`
	VehicleModel string `json:"vehicleModel"`
	ParkingID    string `json:"parkingId"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}
