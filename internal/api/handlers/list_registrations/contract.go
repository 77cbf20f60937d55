package list_registrations

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

type RegistrationLedger interface {
	List(ctx context.Context) ([]domain.Registration, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
