package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/usecase/get_dashboard"
)

type DashboardUseCase interface {
	Execute(ctx context.Context) (*get_dashboard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
