package parkings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/parkings/models"
)

// Service сервис для работы с парковками
type Service struct {
	client ParkingClient
	logger Logger
}

// NewService создает новый экземпляр сервиса парковок
func NewService(client ParkingClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List возвращает парковки; при недоступности API - резервный набор
func (s *Service) List(ctx context.Context) *models.ParkingListResponse {
	parkings, source := s.client.ListParkings(ctx)
	s.logger.Info("List: %d parkings, source=%s", len(parkings), source)
	return &models.ParkingListResponse{Parkings: parkings, Source: source}
}

// GetByID возвращает парковку по id
func (s *Service) GetByID(ctx context.Context, id string) (*models.ParkingResponse, error) {
	parking, source, err := s.client.GetParkingByID(ctx, id)
	if err != nil {
		if errors.Is(err, parkingapi.ErrParkingNotFound) {
			s.logger.Warn("GetByID: parking id=%s not found", id)
			return nil, ErrParkingNotFound
		}
		s.logger.Error("GetByID: failed to get parking id=%s: %v", id, err)
		return nil, err
	}

	return &models.ParkingResponse{Parking: parking, Source: source}, nil
}

// Create создает парковку
func (s *Service) Create(ctx context.Context, payload parkingapi.ParkingPayload) (*domain.Parking, error) {
	if err := validateFields(payload.Fields); err != nil {
		s.logger.Warn("Create: invalid parking data: %v", err)
		return nil, err
	}

	parking, err := s.client.CreateParking(ctx, payload)
	if err != nil {
		s.logger.Error("Create: failed to create parking name=%s: %v", payload.Fields.Name, err)
		return nil, err
	}

	s.logger.Info("Create: parking id=%s created", parking.ID)
	return parking, nil
}

// Update обновляет парковку
func (s *Service) Update(ctx context.Context, id string, payload parkingapi.ParkingPayload) (*domain.Parking, error) {
	if err := validateFields(payload.Fields); err != nil {
		s.logger.Warn("Update: invalid parking data for id=%s: %v", id, err)
		return nil, err
	}

	parking, err := s.client.UpdateParking(ctx, id, payload)
	if err != nil {
		s.logger.Error("Update: failed to update parking id=%s: %v", id, err)
		return nil, err
	}

	s.logger.Info("Update: parking id=%s updated", id)
	return parking, nil
}

// Delete удаляет парковку
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteParking(ctx, id); err != nil {
		s.logger.Error("Delete: failed to delete parking id=%s: %v", id, err)
		return err
	}

	s.logger.Info("Delete: parking id=%s deleted", id)
	return nil
}

// validateFields проверяет инварианты парковки: 0 <= availableSpots <= totalSpots, цена неотрицательна
func validateFields(f parkingapi.ParkingFields) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(f.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if f.TotalSpots <= 0 {
		return fmt.Errorf("%w: totalSpots must be positive", ErrInvalidInput)
	}
	if f.PricePerHour < 0 {
		return fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}
	if f.AvailableSpots != nil {
		p := domain.Parking{TotalSpots: f.TotalSpots, AvailableSpots: *f.AvailableSpots}
		if !p.HasConsistentSpots() {
			return fmt.Errorf("%w: availableSpots must be between 0 and totalSpots", ErrInvalidInput)
		}
	}
	return nil
}
