package parkingapi

import (
	"encoding/json"
	"io"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// Source откуда пришли данные для операций чтения
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// ParkingRecord модель парковки в том виде, в котором ее отдает API
type ParkingRecord struct {
	MongoID        string     `json:"_id,omitempty"`
	ID             flexString `json:"id,omitempty"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	TotalSpots     flexInt    `json:"totalSpots"`
	AvailableSpots flexInt    `json:"availableSpots"`
	PricePerHour   flexFloat  `json:"pricePerHour"`
	Image          *string    `json:"image"`
	IsActive       *bool      `json:"isActive,omitempty"`
	Description    string     `json:"description"`
	Services       []string   `json:"services"`
	OpeningHours   string     `json:"openingHours"`
}

// ReservationRecord модель бронирования из API
// parking может прийти как строка (id) или как вложенный объект
type ReservationRecord struct {
	MongoID      string          `json:"_id,omitempty"`
	ID           flexString      `json:"id,omitempty"`
	Parking      json.RawMessage `json:"parking,omitempty"`
	ParkingID    flexString      `json:"parkingId,omitempty"`
	Name         string          `json:"name,omitempty"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	VehiclePlate string          `json:"vehiclePlate"`
	VehicleModel string          `json:"vehicleModel"`
	StartDate    flexTime        `json:"startDate"`
	EndDate      flexTime        `json:"endDate"`
	Duration     flexInt         `json:"duration"`
	TotalPrice   flexFloat       `json:"totalPrice"`
	Total        flexFloat       `json:"total,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    flexTime        `json:"createdAt"`
}

// ClientRecord модель клиента из API
type ClientRecord struct {
	MongoID      string          `json:"_id,omitempty"`
	ID           flexString      `json:"id,omitempty"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	VehiclePlate string          `json:"vehiclePlate"`
	VehicleModel string          `json:"vehicleModel"`
	Parking      json.RawMessage `json:"parking,omitempty"`
	ParkingID    json.RawMessage `json:"parkingId,omitempty"`
	StartDate    flexTime        `json:"startDate"`
	EndDate      flexTime        `json:"endDate"`
	Duration     flexInt         `json:"duration"`
	TotalPrice   flexFloat       `json:"totalPrice"`
	Reservations flexInt         `json:"reservations"`
}

// parkingRef вложенный объект парковки внутри бронирования/клиента
type parkingRef struct {
	MongoID string     `json:"_id"`
	ID      flexString `json:"id"`
	Name    string     `json:"name"`
}

// AuthResult результат логина/регистрации
// Одинаковый для ответа API и для локально синтезированного ответа
type AuthResult struct {
	Token string
	User  domain.User
}

type authRecord struct {
	Token string `json:"token"`
	User  struct {
		MongoID string     `json:"_id"`
		ID      flexString `json:"id"`
		Email   string     `json:"email"`
		Role    string     `json:"role"`
	} `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest данные для регистрации пользователя
type RegisterRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// ReservationRequest тело запроса на создание бронирования
type ReservationRequest struct {
	ParkingID     string    `json:"parkingId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	VehiclePlate  string    `json:"vehiclePlate"`
	VehicleModel  string    `json:"vehicleModel"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	Total         float64   `json:"total"`
	DurationHours int       `json:"duration"`
}

// ClientRequest тело запроса на создание клиента
type ClientRequest struct {
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	VehiclePlate  string     `json:"vehiclePlate"`
	VehicleModel  string     `json:"vehicleModel"`
	ParkingID     string     `json:"parkingId,omitempty"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	DurationHours int        `json:"duration"`
	TotalPrice    float64    `json:"totalPrice"`
}

// ParkingFields поля парковки для создания/обновления
type ParkingFields struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	TotalSpots     int      `json:"totalSpots"`
	AvailableSpots *int     `json:"availableSpots,omitempty"`
	PricePerHour   float64  `json:"pricePerHour"`
	Description    string   `json:"description"`
	IsActive       bool     `json:"isActive"`
	OpeningHours   string   `json:"openingHours"`
	Services       []string `json:"services"`
}

// ImageFile файл изображения для multipart-запроса
type ImageFile struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// ParkingPayload данные парковки: без Image уходят JSON, с Image - multipart/form-data
type ParkingPayload struct {
	Fields ParkingFields
	Image  *ImageFile
}

// IsMultipart returns true if the payload carries an image file
func (p ParkingPayload) IsMultipart() bool {
	return p.Image != nil && p.Image.Content != nil
}
