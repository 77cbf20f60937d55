package get_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/pkg/logger"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockAPI) ListParkings(ctx context.Context) ([]domain.Parking, parkingapi.Source) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Parking), args.Get(1).(parkingapi.Source)
}

func (m *MockAPI) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	var all []domain.Reservation
	// статус, неизвестный шлюзу, не попадает ни в pending, ни в confirmed
	all = append(all, domain.Reservation{ID: "x", Status: "rejected", TotalPrice: 500, CreatedAt: now.Add(-48 * time.Hour)})
	for i := 0; i < 7; i++ {
		status := domain.StatusPending
		if i%2 == 0 {
			status = domain.StatusConfirmed
		}
		all = append(all, domain.Reservation{
			ID:         string(rune('a' + i)),
			Status:     status,
			TotalPrice: 1000,
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
			StartDate:  now.Add(time.Duration(3-i) * day),
		})
	}

	api := new(MockAPI)
	api.On("ListClients", ctx).Return([]domain.Client{{ID: "c1"}, {ID: "c2"}}, nil)
	api.On("ListAllReservations", ctx).Return(all, nil)
	api.On("ListParkings", ctx).Return([]domain.Parking{{ID: "1"}, {ID: "2"}, {ID: "3"}}, parkingapi.SourceRemote)

	uc := NewUseCase(api, api, api, logger.NewNop())
	uc.timeProvider = fixedTime{t: now}

	resp, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, Stats{
		TotalClients:          2,
		TotalParkings:         3,
		TotalReservations:     8,
		PendingReservations:   3,
		ConfirmedReservations: 4,
		Revenue:               4000,
	}, resp.Stats)
	assert.Equal(t, parkingapi.SourceRemote, resp.ParkingsSource)

	require.Len(t, resp.Recent, 5)
	assert.Equal(t, "a", resp.Recent[0].ID)
	assert.Equal(t, "e", resp.Recent[4].ID)

	// startDate в будущем только у a, b, c; ближайшая первой
	require.Len(t, resp.Upcoming, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{resp.Upcoming[0].ID, resp.Upcoming[1].ID, resp.Upcoming[2].ID})
}

func TestUseCase_Execute_FallbackParkingsNotCounted(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	api.On("ListClients", ctx).Return([]domain.Client{}, nil)
	api.On("ListAllReservations", ctx).Return([]domain.Reservation{}, nil)
	api.On("ListParkings", ctx).Return(parkingapi.DefaultFallbackParkings(), parkingapi.SourceFallback)

	resp, err := NewUseCase(api, api, api, logger.NewNop()).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Stats.TotalParkings)
	assert.Equal(t, parkingapi.SourceFallback, resp.ParkingsSource)
}

func TestUseCase_Execute_ClientsFailure(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	api.On("ListClients", ctx).Return(nil, parkingapi.ErrServiceUnreachable)

	_, err := NewUseCase(api, api, api, logger.NewNop()).Execute(ctx)
	assert.ErrorIs(t, err, parkingapi.ErrServiceUnreachable)
}
