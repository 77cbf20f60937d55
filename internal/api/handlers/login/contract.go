package login

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
