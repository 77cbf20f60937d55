package reservations

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// ReservationClient интерфейс клиента parking API для бронирований
type ReservationClient interface {
	ListAllReservations(ctx context.Context) ([]domain.Reservation, error)
	ListPendingReservations(ctx context.Context) ([]domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	DeleteReservation(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
