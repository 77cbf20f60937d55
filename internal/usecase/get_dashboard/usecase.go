package get_dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// UseCase собирает данные панели администратора
type UseCase struct {
	reservations ReservationLister
	parkings     ParkingLister
	clients      ClientLister
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationLister,
	parkings ParkingLister,
	clients ClientLister,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		parkings:     parkings,
		clients:      clients,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute считает показатели
// Выручка - сумма totalPrice подтвержденных бронирований
// Резервный набор парковок в TotalParkings не считается
// Recent - 5 последних по createdAt, Upcoming - 5 ближайших с startDate в будущем
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	clients, err := uc.clients.ListClients(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to list clients: %v", err)
		return nil, err
	}

	reservations, err := uc.reservations.ListAllReservations(ctx)
	if err != nil {
		uc.logger.Error("GetDashboard: failed to list reservations: %v", err)
		return nil, err
	}

	parkings, source := uc.parkings.ListParkings(ctx)
	if source == parkingapi.SourceFallback {
		parkings = nil
	}

	stats := Stats{
		TotalClients:      len(clients),
		TotalParkings:     len(parkings),
		TotalReservations: len(reservations),
	}
	for _, r := range reservations {
		switch r.Status {
		case domain.StatusPending:
			stats.PendingReservations++
		case domain.StatusConfirmed:
			stats.ConfirmedReservations++
			stats.Revenue += r.TotalPrice
		}
	}

	resp := &Response{
		Stats:          stats,
		Recent:         recentReservations(reservations, domain.DashboardRecentLimit),
		Upcoming:       upcomingReservations(reservations, uc.timeProvider.Now(), domain.DashboardUpcomingLimit),
		ParkingsSource: source,
	}

	uc.logger.Info("GetDashboard: clients=%d, parkings=%d (source=%s), reservations=%d, revenue=%.2f",
		stats.TotalClients, stats.TotalParkings, source, stats.TotalReservations, stats.Revenue)
	return resp, nil
}

func recentReservations(all []domain.Reservation, limit int) []domain.Reservation {
	sorted := make([]domain.Reservation, len(all))
	copy(sorted, all)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return truncate(sorted, limit)
}

func upcomingReservations(all []domain.Reservation, now time.Time, limit int) []domain.Reservation {
	upcoming := make([]domain.Reservation, 0, len(all))
	for _, r := range all {
		if r.StartDate.After(now) {
			upcoming = append(upcoming, r)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})

	return truncate(upcoming, limit)
}

func truncate(reservations []domain.Reservation, limit int) []domain.Reservation {
	if len(reservations) > limit {
		return reservations[:limit]
	}
	return reservations
}
