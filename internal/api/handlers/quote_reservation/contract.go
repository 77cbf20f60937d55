package quote_reservation

import (
	"context"

	"github.com/m04kA/SMC-ParkingPortal/internal/usecase/quote_reservation"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req *quote_reservation.Request) (*quote_reservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
