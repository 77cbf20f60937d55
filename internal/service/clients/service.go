package clients

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	client   ClientAPI
	parkings ParkingFinder
	logger   Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(client ClientAPI, parkings ParkingFinder, logger Logger) *Service {
	return &Service{
		client:   client,
		parkings: parkings,
		logger:   logger,
	}
}

// List возвращает всех клиентов
func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.client.ListClients(ctx)
	if err != nil {
		s.logger.Error("List: failed to list clients: %v", err)
		return nil, err
	}

	s.logger.Info("List: %d clients", len(clients))
	return clients, nil
}

// Create проверяет данные и создает клиента
// Порядок проверок: имя -> email -> телефон -> интервал дат
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*domain.Client, error) {
	if err := s.validate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	clientReq := &parkingapi.ClientRequest{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Phone:        req.Phone,
		VehiclePlate: req.VehiclePlate,
		VehicleModel: req.VehicleModel,
		ParkingID:    req.ParkingID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}

	if req.ParkingID != "" {
		parking, _, err := s.parkings.GetParkingByID(ctx, req.ParkingID)
		if err != nil {
			if errors.Is(err, parkingapi.ErrParkingNotFound) {
				s.logger.Warn("Create: parking id=%s not found", req.ParkingID)
				return nil, ErrParkingNotFound
			}
			s.logger.Error("Create: failed to get parking id=%s: %v", req.ParkingID, err)
			return nil, err
		}

		if req.StartDate != nil && req.EndDate != nil {
			quote := calculator.ComputeQuote(*req.StartDate, *req.EndDate, parking.PricePerHour)
			clientReq.DurationHours = quote.DurationHours
			clientReq.TotalPrice = quote.TotalPrice
		}
	} else if req.StartDate != nil && req.EndDate != nil {
		clientReq.DurationHours = calculator.ComputeDurationHours(*req.StartDate, *req.EndDate)
	}

	client, err := s.client.CreateClient(ctx, clientReq)
	if err != nil {
		s.logger.Error("Create: failed to create client email=%s: %v", req.Email, err)
		return nil, err
	}

	s.logger.Info("Create: client id=%s created (duration=%dh, total=%.2f)",
		client.ID, clientReq.DurationHours, clientReq.TotalPrice)
	return client, nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteClient(ctx, id); err != nil {
		s.logger.Error("Delete: failed to delete client id=%s: %v", id, err)
		return err
	}

	s.logger.Info("Delete: client id=%s deleted", id)
	return nil
}

func (s *Service) validate(req *models.CreateClientRequest) error {
	if err := calculator.ValidateRequiredFields([]calculator.Field{
		{Name: calculator.FieldName, Value: req.Name},
	}); err != nil {
		return err
	}

	if err := calculator.ValidateContact(req.Email, req.Phone); err != nil {
		return err
	}

	if req.StartDate != nil && req.EndDate != nil {
		return calculator.ValidateInterval(*req.StartDate, *req.EndDate)
	}
	return nil
}
