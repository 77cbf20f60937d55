package list_reservations

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

type ReservationService interface {
	List(ctx context.Context, status string) ([]domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
