package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// ReservationLister интерфейс получения бронирований
type ReservationLister interface {
	ListAllReservations(ctx context.Context) ([]domain.Reservation, error)
}

// ParkingLister интерфейс получения парковок
type ParkingLister interface {
	ListParkings(ctx context.Context) ([]domain.Parking, parkingapi.Source)
}

// ClientLister интерфейс получения клиентов
type ClientLister interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
