package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField возвращается, когда обязательное поле пустое
	ErrMissingField = errors.New("calculator: missing required field")

	// ErrInvalidEmail возвращается при некорректном формате email
	ErrInvalidEmail = errors.New("calculator: invalid email")

	// ErrInvalidPhone возвращается, если телефон не состоит ровно из 10 цифр
	ErrInvalidPhone = errors.New("calculator: invalid phone")

	// ErrInvalidDate возвращается, если дата не в формате datetime-local или RFC3339
	ErrInvalidDate = errors.New("calculator: invalid date")

	// ErrInvalidInterval возвращается, если конец интервала не позже начала
	ErrInvalidInterval = errors.New("calculator: end date must be after start date")
)

// ValidationError ошибка валидации с указанием поля
// errors.Is(err, ErrInvalidEmail) и т.п. работает через Unwrap
type ValidationError struct {
	Field string
	Kind  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Field)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func newValidationError(field string, kind error) *ValidationError {
	return &ValidationError{Field: field, Kind: kind}
}
