package parkings

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// ParkingClient интерфейс клиента parking API для парковок
type ParkingClient interface {
	ListParkings(ctx context.Context) ([]domain.Parking, parkingapi.Source)
	GetParkingByID(ctx context.Context, id string) (*domain.Parking, parkingapi.Source, error)
	CreateParking(ctx context.Context, payload parkingapi.ParkingPayload) (*domain.Parking, error)
	UpdateParking(ctx context.Context, id string, payload parkingapi.ParkingPayload) (*domain.Parking, error)
	DeleteParking(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
