package register_client

import (
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// Response созданный клиент и запись журнала
type Response struct {
	Client       *domain.Client
	Registration *domain.Registration
}

// clientRequestFromReservation переносит данные бронирования в карточку клиента
func clientRequestFromReservation(r *domain.Reservation) *parkingapi.ClientRequest {
	start, end := r.StartDate, r.EndDate

	req := &parkingapi.ClientRequest{
		Name:          r.FullName(),
		Email:         r.Email,
		Phone:         r.Phone,
		VehiclePlate:  r.VehiclePlate,
		VehicleModel:  r.VehicleModel,
		ParkingID:     r.ParkingID,
		DurationHours: r.DurationHours,
		TotalPrice:    r.TotalPrice,
	}
	if !start.IsZero() {
		req.StartDate = &start
	}
	if !end.IsZero() {
		req.EndDate = &end
	}
	return req
}
