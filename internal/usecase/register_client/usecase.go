package register_client

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	registrationRepo "github.com/m04kA/SMC-ParkingPortal/internal/infra/storage/registration"
)

// UseCase регистрирует подтвержденное бронирование как клиента
// Каждое бронирование регистрируется не более одного раза (журнал регистраций)
type UseCase struct {
	reservations ReservationLister
	clients      ClientCreator
	ledger       RegistrationLedger
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationLister,
	clients ClientCreator,
	ledger RegistrationLedger,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		clients:      clients,
		ledger:       ledger,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет регистрацию бронирования reservationID
func (uc *UseCase) Execute(ctx context.Context, reservationID string) (*Response, error) {
	uc.logger.Info("RegisterClient: reservation id=%s", reservationID)

	// 1. Уже зарегистрировано?
	exists, err := uc.ledger.Exists(ctx, reservationID)
	if err != nil {
		uc.logger.Error("RegisterClient: ledger lookup failed for reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ledger lookup: %v", ErrInternal, err)
	}
	if exists {
		uc.logger.Warn("RegisterClient: reservation id=%s already registered", reservationID)
		return nil, ErrAlreadyRegistered
	}

	// 2. Бронирование должно существовать и быть подтвержденным
	reservation, err := uc.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.IsConfirmed() {
		uc.logger.Warn("RegisterClient: reservation id=%s has status=%s", reservationID, reservation.Status)
		return nil, ErrNotConfirmed
	}

	// 3. Создаем клиента
	client, err := uc.clients.CreateClient(ctx, clientRequestFromReservation(reservation))
	if err != nil {
		uc.logger.Error("RegisterClient: failed to create client for reservation id=%s: %v", reservationID, err)
		return nil, err
	}

	// 4. Фиксируем в журнале
	reg := &domain.Registration{
		ReservationID: reservationID,
		ClientID:      client.ID,
		RegisteredAt:  uc.timeProvider.Now(),
	}
	if err := uc.ledger.Create(ctx, reg); err != nil {
		if errors.Is(err, registrationRepo.ErrAlreadyRegistered) {
			uc.logger.Warn("RegisterClient: reservation id=%s registered concurrently, client id=%s", reservationID, client.ID)
			return nil, ErrAlreadyRegistered
		}
		uc.logger.Error("RegisterClient: failed to record registration for reservation id=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: ledger write: %v", ErrInternal, err)
	}

	uc.logger.Info("RegisterClient: reservation id=%s registered as client id=%s", reservationID, client.ID)
	return &Response{Client: client, Registration: reg}, nil
}

func (uc *UseCase) findReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	all, err := uc.reservations.ListAllReservations(ctx)
	if err != nil {
		uc.logger.Error("RegisterClient: failed to list reservations: %v", err)
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}

	uc.logger.Warn("RegisterClient: reservation id=%s not found", id)
	return nil, ErrReservationNotFound
}
