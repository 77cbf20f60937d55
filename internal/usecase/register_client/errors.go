package register_client

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("register_client: reservation not found")

	// ErrNotConfirmed возвращается, когда бронирование не подтверждено
	ErrNotConfirmed = errors.New("register_client: only confirmed reservations can be registered")

	// ErrAlreadyRegistered возвращается при повторной регистрации бронирования
	ErrAlreadyRegistered = errors.New("register_client: reservation already registered as client")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_client: internal error")
)
