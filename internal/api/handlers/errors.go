package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

const (
	msgUpstreamUnavailable = "сервис парковок временно недоступен"
	msgUpstreamBadResponse = "некорректный ответ сервиса парковок"

	msgMissingField    = "поле обязательно для заполнения"
	msgInvalidEmail    = "некорректный адрес email"
	msgInvalidPhone    = "номер телефона должен содержать 10 цифр"
	msgInvalidInterval = "дата окончания должна быть позже даты начала"
	msgInvalidDate     = "некорректный формат даты"
	msgInvalidField    = "некорректное значение поля"
)

// RespondUpstreamError отвечает на ошибку parking API
// RemoteError -> статус и сообщение API как есть; нет связи -> 503; битый ответ -> 502
// Возвращает false, если ошибка не относится к parking API
func RespondUpstreamError(w http.ResponseWriter, err error) bool {
	var remoteErr *parkingapi.RemoteError
	switch {
	case errors.As(err, &remoteErr):
		RespondError(w, remoteErr.Status, remoteErr.Message)
	case errors.Is(err, parkingapi.ErrServiceUnreachable), errors.Is(err, parkingapi.ErrServiceUnavailable):
		RespondError(w, http.StatusServiceUnavailable, msgUpstreamUnavailable)
	case errors.Is(err, parkingapi.ErrInvalidResponse):
		RespondError(w, http.StatusBadGateway, msgUpstreamBadResponse)
	default:
		return false
	}
	return true
}

// RespondValidationError отвечает 400 с именем поля для *calculator.ValidationError
// Возвращает false для остальных ошибок
func RespondValidationError(w http.ResponseWriter, err error) bool {
	var validationErr *calculator.ValidationError
	if !errors.As(err, &validationErr) {
		return false
	}

	RespondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: validationMessage(validationErr.Kind),
		Field: validationErr.Field,
	})
	return true
}

func validationMessage(kind error) string {
	switch {
	case errors.Is(kind, calculator.ErrMissingField):
		return msgMissingField
	case errors.Is(kind, calculator.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(kind, calculator.ErrInvalidPhone):
		return msgInvalidPhone
	case errors.Is(kind, calculator.ErrInvalidInterval):
		return msgInvalidInterval
	case errors.Is(kind, calculator.ErrInvalidDate):
		return msgInvalidDate
	default:
		return msgInvalidField
	}
}
