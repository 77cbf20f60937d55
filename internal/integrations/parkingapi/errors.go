package parkingapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrServiceUnreachable возвращается, когда parking API не ответил (сеть, таймаут, DNS)
	ErrServiceUnreachable = errors.New("parkingapi: service unreachable")

	// ErrServiceUnavailable возвращается, когда health probe не прошел перед операцией без fallback
	ErrServiceUnavailable = errors.New("parkingapi: service unavailable")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль в локальном режиме
	ErrInvalidCredentials = errors.New("parkingapi: invalid credentials")

	// ErrDuplicateEmail возвращается при регистрации с уже существующим email в локальном режиме
	ErrDuplicateEmail = errors.New("parkingapi: email already registered")

	// ErrUnauthorized возвращается, когда API отклонил токен (401/403)
	ErrUnauthorized = errors.New("parkingapi: unauthorized")

	// ErrParkingNotFound возвращается, когда парковка не найдена ни в API, ни в резервных данных
	ErrParkingNotFound = errors.New("parkingapi: parking not found")

	// ErrInvalidStatus возвращается при попытке выставить статус, для которого нет эндпоинта
	ErrInvalidStatus = errors.New("parkingapi: unsupported reservation status")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("parkingapi: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("parkingapi: internal error")
)

// genericRemoteMessage используется, когда API не прислал сообщение
const genericRemoteMessage = "remote service error"

// RemoteError ошибка, пришедшая от parking API, со статусом и сообщением как есть
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("parkingapi: remote error %d: %s", e.Status, e.Message)
}

// Is позволяет проверять 401/403 через errors.Is(err, ErrUnauthorized)
func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// IsNotFound returns true for 404 responses
func (e *RemoteError) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}
