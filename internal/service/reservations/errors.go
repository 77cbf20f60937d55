package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrStatusTransition возвращается, когда переход в статус запрещен
	ErrStatusTransition = errors.New("reservation status transition not allowed")
)
