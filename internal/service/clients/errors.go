package clients

import "errors"

var (
	// ErrParkingNotFound возвращается, когда указанная парковка не найдена
	ErrParkingNotFound = errors.New("parking not found")
)
