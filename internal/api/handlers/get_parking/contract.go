package get_parking

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/service/parkings/models"
)

type ParkingService interface {
	GetByID(ctx context.Context, id string) (*models.ParkingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
