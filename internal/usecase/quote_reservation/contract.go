package quote_reservation

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// ParkingFinder интерфейс поиска парковки
type ParkingFinder interface {
	GetParkingByID(ctx context.Context, id string) (*domain.Parking, parkingapi.Source, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
