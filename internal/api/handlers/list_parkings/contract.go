package list_parkings

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/service/parkings/models"
)

type ParkingService interface {
	List(ctx context.Context) *models.ParkingListResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
