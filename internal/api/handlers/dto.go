package handlers

import (
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// ParkingDTO парковка в ответах API портала
type ParkingDTO struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Address               string   `json:"address"`
	TotalSpots            int      `json:"totalSpots"`
	AvailableSpots        int      `json:"availableSpots"`
	OccupiedSpots         int      `json:"occupiedSpots"`
	PricePerHour          float64  `json:"pricePerHour"`
	PricePerHourFormatted string   `json:"pricePerHourFormatted"`
	Image                 string   `json:"image"`
	IsActive              bool     `json:"isActive"`
	Description           string   `json:"description"`
	Services              []string `json:"services"`
	OpeningHours          string   `json:"openingHours"`
}

// ReservationDTO бронирование в ответах API портала
type ReservationDTO struct {
	ID                  string  `json:"id"`
	ParkingID           string  `json:"parkingId"`
	ParkingName         string  `json:"parkingName,omitempty"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	FullName            string  `json:"fullName"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	VehiclePlate        string  `json:"vehiclePlate"`
	VehicleModel        string  `json:"vehicleModel"`
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	StartDateFormatted  string  `json:"startDateFormatted"`
	EndDateFormatted    string  `json:"endDateFormatted"`
	DurationHours       int     `json:"durationHours"`
	TotalPrice          float64 `json:"totalPrice"`
	TotalPriceFormatted string  `json:"totalPriceFormatted"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"createdAt,omitempty"`
}

// ClientDTO клиент в ответах API портала
type ClientDTO struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	VehiclePlate        string  `json:"vehiclePlate"`
	VehicleModel        string  `json:"vehicleModel"`
	ParkingID           *string `json:"parkingId,omitempty"`
	StartDate           *string `json:"startDate,omitempty"`
	EndDate             *string `json:"endDate,omitempty"`
	DurationHours       int     `json:"durationHours"`
	TotalPrice          float64 `json:"totalPrice"`
	TotalPriceFormatted string  `json:"totalPriceFormatted"`
	ReservationsCount   int     `json:"reservationsCount"`
}

// FromDomainParking конвертирует парковку в DTO
func FromDomainParking(p *domain.Parking) ParkingDTO {
	image := domain.DefaultImagePath
	if p.Image != nil {
		image = *p.Image
	}

	services := p.Services
	if services == nil {
		services = []string{}
	}

	return ParkingDTO{
		ID:                    p.ID,
		Name:                  p.Name,
		Address:               p.Address,
		TotalSpots:            p.TotalSpots,
		AvailableSpots:        p.AvailableSpots,
		OccupiedSpots:         p.OccupiedSpots(),
		PricePerHour:          p.PricePerHour,
		PricePerHourFormatted: calculator.FormatPrice(p.PricePerHour),
		Image:                 image,
		IsActive:              p.IsActive,
		Description:           p.Description,
		Services:              services,
		OpeningHours:          p.OpeningHours,
	}
}

// FromDomainParkings конвертирует список парковок
func FromDomainParkings(parkings []domain.Parking) []ParkingDTO {
	result := make([]ParkingDTO, 0, len(parkings))
	for i := range parkings {
		result = append(result, FromDomainParking(&parkings[i]))
	}
	return result
}

// FromDomainReservation конвертирует бронирование в DTO; даты для отображения в зоне loc
func FromDomainReservation(r *domain.Reservation, loc *time.Location) ReservationDTO {
	dto := ReservationDTO{
		ID:                  r.ID,
		ParkingID:           r.ParkingID,
		ParkingName:         r.ParkingName,
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		FullName:            r.FullName(),
		Email:               r.Email,
		Phone:               r.Phone,
		VehiclePlate:        r.VehiclePlate,
		VehicleModel:        r.VehicleModel,
		StartDate:           formatRFC3339(r.StartDate),
		EndDate:             formatRFC3339(r.EndDate),
		StartDateFormatted:  calculator.FormatDate(r.StartDate, loc),
		EndDateFormatted:    calculator.FormatDate(r.EndDate, loc),
		DurationHours:       r.DurationHours,
		TotalPrice:          r.TotalPrice,
		TotalPriceFormatted: calculator.FormatPrice(r.TotalPrice),
		Status:              string(r.Status),
	}
	if !r.CreatedAt.IsZero() {
		dto.CreatedAt = formatRFC3339(r.CreatedAt)
	}
	return dto
}

// FromDomainReservations конвертирует список бронирований
func FromDomainReservations(reservations []domain.Reservation, loc *time.Location) []ReservationDTO {
	result := make([]ReservationDTO, 0, len(reservations))
	for i := range reservations {
		result = append(result, FromDomainReservation(&reservations[i], loc))
	}
	return result
}

// FromDomainClient конвертирует клиента в DTO
func FromDomainClient(c *domain.Client) ClientDTO {
	return ClientDTO{
		ID:                  c.ID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		VehiclePlate:        c.VehiclePlate,
		VehicleModel:        c.VehicleModel,
		ParkingID:           c.ParkingID,
		StartDate:           formatOptional(c.StartDate),
		EndDate:             formatOptional(c.EndDate),
		DurationHours:       c.DurationHours,
		TotalPrice:          c.TotalPrice,
		TotalPriceFormatted: calculator.FormatPrice(c.TotalPrice),
		ReservationsCount:   c.ReservationsCount,
	}
}

// FromDomainClients конвертирует список клиентов
func FromDomainClients(clients []domain.Client) []ClientDTO {
	result := make([]ClientDTO, 0, len(clients))
	for i := range clients {
		result = append(result, FromDomainClient(&clients[i]))
	}
	return result
}

func formatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
