package register_client

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

// ClientCreator интерфейс создания клиента в parking API
type ClientCreator interface {
	CreateClient(ctx context.Context, req *parkingapi.ClientRequest) (*domain.Client, error)
}

// RegistrationLedger журнал зарегистрированных бронирований
type RegistrationLedger interface {
	Exists(ctx context.Context, reservationID string) (bool, error)
	Create(ctx context.Context, reg *domain.Registration) error
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
