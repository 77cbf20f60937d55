package parkingapi

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// NormalizeParking приводит запись API к domain.Parking
// _id -> id, числа приведены, image -> полный URL в uploads или плейсхолдер
// Места и цена не отрицательны, availableSpots не больше totalSpots
// Повторная нормализация уже нормализованной записи дает тот же результат
func NormalizeParking(rec ParkingRecord, uploadsURL string) domain.Parking {
	isActive := true
	if rec.IsActive != nil {
		isActive = *rec.IsActive
	}

	services := make([]string, 0, len(rec.Services))
	services = append(services, rec.Services...)

	image := resolveImage(rec.Image, uploadsURL)

	totalSpots := max(int(rec.TotalSpots), 0)
	availableSpots := min(max(int(rec.AvailableSpots), 0), totalSpots)

	return domain.Parking{
		ID:             recordID(rec.MongoID, rec.ID),
		Name:           rec.Name,
		Address:        rec.Address,
		TotalSpots:     totalSpots,
		AvailableSpots: availableSpots,
		PricePerHour:   max(float64(rec.PricePerHour), 0),
		Image:          &image,
		IsActive:       isActive,
		Description:    rec.Description,
		Services:       services,
		OpeningHours:   rec.OpeningHours,
	}
}

// ParkingRecordFromDomain обратная конвертация (для повторной нормализации и тестов)
func ParkingRecordFromDomain(p domain.Parking) ParkingRecord {
	isActive := p.IsActive
	return ParkingRecord{
		ID:             flexString(p.ID),
		Name:           p.Name,
		Address:        p.Address,
		TotalSpots:     flexInt(p.TotalSpots),
		AvailableSpots: flexInt(p.AvailableSpots),
		PricePerHour:   flexFloat(p.PricePerHour),
		Image:          p.Image,
		IsActive:       &isActive,
		Description:    p.Description,
		Services:       append([]string(nil), p.Services...),
		OpeningHours:   p.OpeningHours,
	}
}

// NormalizeReservation приводит запись API к domain.Reservation
func NormalizeReservation(rec ReservationRecord) domain.Reservation {
	ref := parseParkingRef(rec.Parking)
	parkingID := ref.id()
	if parkingID == "" {
		parkingID = string(rec.ParkingID)
	}

	firstName, lastName := rec.FirstName, rec.LastName
	if firstName == "" && lastName == "" && rec.Name != "" {
		firstName, lastName = splitName(rec.Name)
	}

	totalPrice := float64(rec.TotalPrice)
	if totalPrice == 0 {
		totalPrice = float64(rec.Total)
	}

	return domain.Reservation{
		ID:            recordID(rec.MongoID, rec.ID),
		ParkingID:     parkingID,
		ParkingName:   ref.Name,
		FirstName:     firstName,
		LastName:      lastName,
		Email:         rec.Email,
		Phone:         rec.Phone,
		VehiclePlate:  rec.VehiclePlate,
		VehicleModel:  rec.VehicleModel,
		StartDate:     rec.StartDate.Time,
		EndDate:       rec.EndDate.Time,
		DurationHours: int(rec.Duration),
		TotalPrice:    totalPrice,
		Status:        domain.ReservationStatus(rec.Status),
		CreatedAt:     rec.CreatedAt.Time,
	}
}

// NormalizeClient приводит запись API к domain.Client
func NormalizeClient(rec ClientRecord) domain.Client {
	client := domain.Client{
		ID:                recordID(rec.MongoID, rec.ID),
		Name:              rec.Name,
		Email:             rec.Email,
		Phone:             rec.Phone,
		VehiclePlate:      rec.VehiclePlate,
		VehicleModel:      rec.VehicleModel,
		DurationHours:     int(rec.Duration),
		TotalPrice:        float64(rec.TotalPrice),
		ReservationsCount: int(rec.Reservations),
	}

	parkingID := parseParkingRef(rec.Parking).id()
	if parkingID == "" {
		parkingID = parseParkingRef(rec.ParkingID).id()
	}
	if parkingID != "" {
		client.ParkingID = &parkingID
	}

	client.StartDate = optionalTime(rec.StartDate.Time)
	client.EndDate = optionalTime(rec.EndDate.Time)

	return client
}

// resolveImage строит URL изображения
// nil/пусто -> плейсхолдер; абсолютный URL или плейсхолдер -> как есть; имя файла -> uploads/<file>
func resolveImage(image *string, uploadsURL string) string {
	if image == nil {
		return domain.DefaultImagePath
	}

	name := strings.TrimSpace(*image)
	switch {
	case name == "":
		return domain.DefaultImagePath
	case name == domain.DefaultImagePath:
		return name
	case isAbsoluteURL(name):
		return name
	default:
		return strings.TrimRight(uploadsURL, "/") + "/" + strings.TrimLeft(name, "/")
	}
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "http") || strings.EqualFold(u.Scheme, "https")
}

// recordID предпочитает _id, иначе id
func recordID(mongoID string, id flexString) string {
	if mongoID != "" {
		return mongoID
	}
	return string(id)
}

func (r parkingRef) id() string {
	return recordID(r.MongoID, r.ID)
}

// parseParkingRef разбирает ссылку на парковку: "abc", 3 или {"_id": "abc", "name": "..."}
func parseParkingRef(raw json.RawMessage) parkingRef {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return parkingRef{}
	}

	if raw[0] == '{' {
		var ref parkingRef
		if err := json.Unmarshal(raw, &ref); err != nil {
			return parkingRef{}
		}
		return ref
	}

	var id flexString
	if err := json.Unmarshal(raw, &id); err != nil {
		return parkingRef{}
	}
	return parkingRef{ID: id}
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
