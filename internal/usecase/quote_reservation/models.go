package quote_reservation

import "time"

// Request парковка и интервал для расчета
type Request struct {
	ParkingID string
	StartDate time.Time
	EndDate   time.Time
}

// Response результат расчета
type Response struct {
	ParkingID           string
	PricePerHour        float64
	DurationHours       int
	TotalPrice          float64
	TotalPriceFormatted string
}
