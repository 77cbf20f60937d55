package reservations

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// Service сервис администрирования бронирований
type Service struct {
	client ReservationClient
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client ReservationClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List возвращает бронирования, опционально отфильтрованные по статусу
// pending берется из отдельного endpoint, остальные статусы фильтруются из полного списка
func (s *Service) List(ctx context.Context, status string) ([]domain.Reservation, error) {
	if status == "" {
		return s.listAll(ctx)
	}

	parsed, ok := domain.ParseReservationStatus(status)
	if !ok {
		s.logger.Warn("List: invalid status=%s", status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if parsed == domain.StatusPending {
		reservations, err := s.client.ListPendingReservations(ctx)
		if err != nil {
			s.logger.Error("List: failed to list pending reservations: %v", err)
			return nil, err
		}
		s.logger.Info("List: %d pending reservations", len(reservations))
		return reservations, nil
	}

	all, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterByStatus(all, parsed)
	s.logger.Info("List: %d reservations with status=%s", len(filtered), parsed)
	return filtered, nil
}

// UpdateStatus переводит бронирование в confirmed или cancelled
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	parsed, ok := domain.ParseReservationStatus(status)
	if !ok || parsed == domain.StatusPending {
		s.logger.Warn("UpdateStatus: invalid target status=%s for reservation id=%s", status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	reservation, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !reservation.CanTransitionTo(parsed) {
		s.logger.Warn("UpdateStatus: reservation id=%s cannot move from %s to %s", id, reservation.Status, parsed)
		return fmt.Errorf("%w: %s -> %s", ErrStatusTransition, reservation.Status, parsed)
	}

	if err := s.client.UpdateReservationStatus(ctx, id, parsed); err != nil {
		s.logger.Error("UpdateStatus: failed to update reservation id=%s: %v", id, err)
		return err
	}

	s.logger.Info("UpdateStatus: reservation id=%s %s -> %s", id, reservation.Status, parsed)
	return nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteReservation(ctx, id); err != nil {
		s.logger.Error("Delete: failed to delete reservation id=%s: %v", id, err)
		return err
	}

	s.logger.Info("Delete: reservation id=%s deleted", id)
	return nil
}

func (s *Service) listAll(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.client.ListAllReservations(ctx)
	if err != nil {
		s.logger.Error("List: failed to list reservations: %v", err)
		return nil, err
	}
	return reservations, nil
}

func (s *Service) find(ctx context.Context, id string) (*domain.Reservation, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}

	s.logger.Warn("find: reservation id=%s not found", id)
	return nil, ErrReservationNotFound
}
