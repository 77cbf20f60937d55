package auth

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// AuthClient интерфейс клиента parking API для авторизации
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*parkingapi.AuthResult, error)
	Register(ctx context.Context, req *parkingapi.RegisterRequest) (*parkingapi.AuthResult, error)
	Session(ctx context.Context) *parkingapi.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
