package create_client

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/clients/models"
)

type ClientService interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
