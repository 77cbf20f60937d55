package parkings

import "errors"

var (
	// ErrParkingNotFound возвращается, когда парковка не найдена ни в API, ни в резервном наборе
	ErrParkingNotFound = errors.New("parking not found")

	// ErrInvalidInput возвращается при некорректных данных парковки
	ErrInvalidInput = errors.New("invalid parking data")
)
