package create_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
)

// validateRequest проверяет форму: обязательные поля -> email -> телефон -> даты -> интервал
// Возвращает разобранные даты или *calculator.ValidationError для полей формы
func validateRequest(req *Request, loc *time.Location) (time.Time, time.Time, error) {
	if strings.TrimSpace(req.ParkingID) == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: parkingId is required", ErrInvalidInput)
	}

	fields := calculator.ReservationRequiredFields(req.FirstName, req.LastName, req.Email, req.Phone)
	if err := calculator.ValidateRequiredFields(fields); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if err := calculator.ValidateContact(req.Email, req.Phone); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, err := calculator.ParseRequiredDate(calculator.FieldStartDate, req.StartDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := calculator.ParseRequiredDate(calculator.FieldEndDate, req.EndDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if err := calculator.ValidateInterval(start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
