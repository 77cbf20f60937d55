package create_reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// UseCase use case для создания бронирования
type UseCase struct {
	parkings     ParkingFinder
	reservations ReservationCreator
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - зона для дат datetime-local без смещения
func NewUseCase(parkings ParkingFinder, reservations ReservationCreator, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		parkings:     parkings,
		reservations: reservations,
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Стоимость считается на стороне портала по цене парковки; без доступного API бронирование отклоняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: parking=%s, start=%q, end=%q", req.ParkingID, req.StartDate, req.EndDate)

	// 1. Валидация формы
	start, end, err := validateRequest(req, uc.location)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Парковка и цена за час
	parking, source, err := uc.parkings.GetParkingByID(ctx, req.ParkingID)
	if err != nil {
		if errors.Is(err, parkingapi.ErrParkingNotFound) {
			uc.logger.Warn("CreateReservation: parking id=%s not found", req.ParkingID)
			return nil, ErrParkingNotFound
		}
		uc.logger.Error("CreateReservation: failed to get parking id=%s: %v", req.ParkingID, err)
		return nil, err
	}

	// 3. Длительность и стоимость
	quote := calculator.ComputeQuote(start, end, parking.PricePerHour)
	uc.logger.Info("CreateReservation: parking id=%s (source=%s) price=%.2f, duration=%dh, total=%.2f",
		parking.ID, source, parking.PricePerHour, quote.DurationHours, quote.TotalPrice)

	// 4. Создание в parking API
	reservation, err := uc.reservations.CreateReservation(ctx, &parkingapi.ReservationRequest{
		ParkingID:     parking.ID,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         req.Email,
		Phone:         req.Phone,
		VehiclePlate:  req.VehiclePlate,
		VehicleModel:  req.VehicleModel,
		StartDate:     start,
		EndDate:       end,
		Total:         quote.TotalPrice,
		DurationHours: quote.DurationHours,
	})
	if err != nil {
		if errors.Is(err, parkingapi.ErrServiceUnavailable) {
			uc.logger.Error("CreateReservation: parking API unavailable, reservation rejected")
			return nil, ErrServiceUnavailable
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateReservation: reservation id=%s created", reservation.ID)
	return &Response{
		Reservation: reservation,
		Quote:       quote,
		ParkingName: parking.Name,
	}, nil
}
