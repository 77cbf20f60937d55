package calculator

import (
	"fmt"
	"strings"
	"time"
)

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseDateTime разбирает RFC3339 или значение datetime-local без зоны (зона loc)
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseRequiredDate пусто -> ErrMissingField, нераспознанная дата -> ErrInvalidDate, оба с именем поля
func ParseRequiredDate(field, value string, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, newValidationError(field, ErrMissingField)
	}

	t, err := ParseDateTime(value, loc)
	if err != nil {
		return time.Time{}, newValidationError(field, ErrInvalidDate)
	}
	return t, nil
}
