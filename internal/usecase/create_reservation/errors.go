package create_reservation

import "errors"

var (
	// ErrParkingNotFound возвращается, когда парковка не найдена
	ErrParkingNotFound = errors.New("create_reservation: parking not found")

	// ErrServiceUnavailable возвращается, когда parking API недоступен и бронирование не может быть сохранено
	ErrServiceUnavailable = errors.New("create_reservation: reservation service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")
)
