package register_client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	registrationRepo "github.com/m04kA/SMC-ParkingPortal/internal/infra/storage/registration"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/pkg/logger"
)

type MockReservationLister struct {
	mock.Mock
}

func (m *MockReservationLister) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

type MockClientCreator struct {
	mock.Mock
}

func (m *MockClientCreator) CreateClient(ctx context.Context, req *parkingapi.ClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var now = time.Date(2026, 3, 21, 8, 0, 0, 0, time.UTC)

func reservations() []domain.Reservation {
	return []domain.Reservation{
		{
			ID:            "r-1",
			ParkingID:     "2",
			FirstName:     "Awa",
			LastName:      "Koné",
			Email:         "awa@example.com",
			Phone:         "0712345678",
			StartDate:     time.Date(2026, 3, 22, 10, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2026, 3, 22, 13, 0, 0, 0, time.UTC),
			DurationHours: 3,
			TotalPrice:    1200,
			Status:        domain.StatusConfirmed,
		},
		{ID: "r-2", Status: domain.StatusPending},
	}
}

func newUseCase(lister *MockReservationLister, creator *MockClientCreator, ledger RegistrationLedger) *UseCase {
	uc := NewUseCase(lister, creator, ledger, logger.NewNop())
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestUseCase_Execute_RegistersOnce(t *testing.T) {
	ctx := context.Background()
	lister := new(MockReservationLister)
	creator := new(MockClientCreator)
	ledger := registrationRepo.NewMemoryRepository()

	lister.On("ListAllReservations", ctx).Return(reservations(), nil)
	creator.On("CreateClient", ctx, mock.MatchedBy(func(req *parkingapi.ClientRequest) bool {
		return req.Name == "Awa Koné" && req.ParkingID == "2" && req.TotalPrice == 1200 &&
			req.StartDate != nil && req.EndDate != nil
	})).Return(&domain.Client{ID: "c-1"}, nil).Once()

	uc := newUseCase(lister, creator, ledger)

	resp, err := uc.Execute(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "c-1", resp.Client.ID)
	assert.Equal(t, domain.Registration{ReservationID: "r-1", ClientID: "c-1", RegisteredAt: now}, *resp.Registration)

	_, err = uc.Execute(ctx, "r-1")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	creator.AssertNumberOfCalls(t, "CreateClient", 1)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("pending reservation", func(t *testing.T) {
		lister := new(MockReservationLister)
		creator := new(MockClientCreator)
		lister.On("ListAllReservations", ctx).Return(reservations(), nil)

		_, err := newUseCase(lister, creator, registrationRepo.NewMemoryRepository()).Execute(ctx, "r-2")
		assert.ErrorIs(t, err, ErrNotConfirmed)
		creator.AssertNotCalled(t, "CreateClient", mock.Anything, mock.Anything)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		lister := new(MockReservationLister)
		creator := new(MockClientCreator)
		lister.On("ListAllReservations", ctx).Return(reservations(), nil)

		_, err := newUseCase(lister, creator, registrationRepo.NewMemoryRepository()).Execute(ctx, "r-404")
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("client creation fails, nothing recorded", func(t *testing.T) {
		lister := new(MockReservationLister)
		creator := new(MockClientCreator)
		ledger := registrationRepo.NewMemoryRepository()
		lister.On("ListAllReservations", ctx).Return(reservations(), nil)
		creator.On("CreateClient", ctx, mock.Anything).Return(nil, &parkingapi.RemoteError{Status: 500, Message: "boom"})

		_, err := newUseCase(lister, creator, ledger).Execute(ctx, "r-1")
		var remoteErr *parkingapi.RemoteError
		require.ErrorAs(t, err, &remoteErr)

		exists, err := ledger.Exists(ctx, "r-1")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
