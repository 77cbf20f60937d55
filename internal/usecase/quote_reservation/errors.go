package quote_reservation

import "errors"

var (
	// ErrParkingNotFound возвращается, когда парковка не найдена
	ErrParkingNotFound = errors.New("quote_reservation: parking not found")
)
