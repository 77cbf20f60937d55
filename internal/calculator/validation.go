package calculator

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Имена полей формы бронирования
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldName      = "name"
	FieldStartDate = "startDate"
	FieldEndDate   = "endDate"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// Field пара имя-значение для проверки обязательных полей
type Field struct {
	Name  string
	Value string
}

// ReservationRequiredFields возвращает обязательные поля формы бронирования в порядке проверки
func ReservationRequiredFields(firstName, lastName, email, phone string) []Field {
	return []Field{
		{Name: FieldFirstName, Value: firstName},
		{Name: FieldLastName, Value: lastName},
		{Name: FieldEmail, Value: email},
		{Name: FieldPhone, Value: phone},
	}
}

// ValidateRequiredFields возвращает ошибку для первого пустого поля в переданном порядке
func ValidateRequiredFields(fields []Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return newValidationError(f.Name, ErrMissingField)
		}
	}
	return nil
}

// ValidateEmail проверяет формат local@domain.tld
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return newValidationError(FieldEmail, ErrInvalidEmail)
	}
	return nil
}

// ValidatePhone проверяет, что телефон без пробелов состоит ровно из 10 цифр
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(stripWhitespace(phone)) {
		return newValidationError(FieldPhone, ErrInvalidPhone)
	}
	return nil
}

// ValidateContact проверяет email, затем телефон
func ValidateContact(email, phone string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePhone(phone)
}

// ValidateInterval требует, чтобы end был строго позже start
func ValidateInterval(start, end time.Time) error {
	if !end.After(start) {
		return newValidationError(FieldEndDate, ErrInvalidInterval)
	}
	return nil
}

func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
