package create_parking

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

type ParkingService interface {
	Create(ctx context.Context, payload parkingapi.ParkingPayload) (*domain.Parking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
