package registration

import "errors"

var (
	// ErrAlreadyRegistered возвращается, когда бронирование уже есть в журнале
	ErrAlreadyRegistered = errors.New("registration.repository: reservation already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("registration.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("registration.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("registration.repository: failed to scan row")
)
