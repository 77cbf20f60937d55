package quote_reservation

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// UseCase расчет длительности и стоимости без создания бронирования
type UseCase struct {
	parkings ParkingFinder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(parkings ParkingFinder, logger Logger) *UseCase {
	return &UseCase{
		parkings: parkings,
		logger:   logger,
	}
}

// Execute считает стоимость; для некорректного интервала возвращает ошибку поля endDate
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := calculator.ValidateInterval(req.StartDate, req.EndDate); err != nil {
		uc.logger.Warn("QuoteReservation: invalid interval for parking=%s", req.ParkingID)
		return nil, err
	}

	parking, _, err := uc.parkings.GetParkingByID(ctx, req.ParkingID)
	if err != nil {
		if errors.Is(err, parkingapi.ErrParkingNotFound) {
			uc.logger.Warn("QuoteReservation: parking id=%s not found", req.ParkingID)
			return nil, ErrParkingNotFound
		}
		uc.logger.Error("QuoteReservation: failed to get parking id=%s: %v", req.ParkingID, err)
		return nil, err
	}

	quote := calculator.ComputeQuote(req.StartDate, req.EndDate, parking.PricePerHour)

	return &Response{
		ParkingID:           parking.ID,
		PricePerHour:        parking.PricePerHour,
		DurationHours:       quote.DurationHours,
		TotalPrice:          quote.TotalPrice,
		TotalPriceFormatted: calculator.FormatPrice(quote.TotalPrice),
	}, nil
}
