package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
)

const maxJSONBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// В ошибках используем имена полей из json-тегов
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	return json.NewDecoder(io.LimitReader(r.Body, maxJSONBodyBytes)).Decode(v)
}

// ValidateStruct проверяет теги validate; nil если ошибок нет, иначе поле -> тег
func ValidateStruct(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// RespondInvalidFields отвечает 400 со списком невалидных полей
func RespondInvalidFields(w http.ResponseWriter, message string, fields map[string]string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message, Fields: fields})
}

// ParseDateTime разбирает RFC3339 или значение datetime-local без зоны (зона loc)
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	return calculator.ParseDateTime(s, loc)
}

// ParseOptionalDateTime пустая строка -> nil
func ParseOptionalDateTime(s string, loc *time.Location) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDateTime(s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
