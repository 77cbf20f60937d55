package clients

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// ClientAPI интерфейс клиента parking API для клиентов
type ClientAPI interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, req *parkingapi.ClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, id string) error
}

// ParkingFinder интерфейс поиска парковки (для расчета стоимости)
type ParkingFinder interface {
	GetParkingByID(ctx context.Context, id string) (*domain.Parking, parkingapi.Source, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
