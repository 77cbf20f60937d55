package register_client

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/usecase/register_client"
)

type RegisterClientUseCase interface {
	Execute(ctx context.Context, reservationID string) (*register_client.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
