package quote_reservation

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ParkingID string `json:"parkingId" validate:"required"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ParkingID           string  `json:"parkingId"`
	PricePerHour        float64 `json:"pricePerHour"`
	DurationHours       int     `json:"durationHours"`
	TotalPrice          float64 `json:"totalPrice"`
	TotalPriceFormatted string  `json:"totalPriceFormatted"`
}
