package models

import (
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// ParkingListResponse список парковок с указанием источника
type ParkingListResponse struct {
	Parkings []domain.Parking
	Source   parkingapi.Source
}

// ParkingResponse парковка с указанием источника
type ParkingResponse struct {
	Parking *domain.Parking
	Source  parkingapi.Source
}
