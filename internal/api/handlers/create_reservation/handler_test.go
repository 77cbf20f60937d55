package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-ParkingPortal/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*create_reservation.Response), args.Error(1)
}

const validBody = `{
	"parkingId": "2",
	"firstName": "Awa",
	"lastName": "Koné",
	"email": "awa@example.com",
	"phone": "07 12 34 56 78",
	"vehiclePlate": "AB-123-CD",
	"startDate": "2026-03-20T10:00",
	"endDate": "2026-03-20T12:30"
}`

type MockParkingFinder struct {
	mock.Mock
}

func (m *MockParkingFinder) GetParkingByID(ctx context.Context, id string) (*domain.Parking, parkingapi.Source, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.Parking), args.Get(1).(parkingapi.Source), args.Error(2)
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := new(MockUseCase)
	h := NewHandler(uc, time.UTC, logger.NewNop())

	start := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 20, 12, 30, 0, 0, time.UTC)

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *create_reservation.Request) bool {
		return req.ParkingID == "2" && req.StartDate == "2026-03-20T10:00" && req.EndDate == "2026-03-20T12:30" && req.Phone == "07 12 34 56 78"
	})).Return(&create_reservation.Response{
		Reservation: &domain.Reservation{
			ID:            "r-1",
			ParkingID:     "2",
			FirstName:     "Awa",
			LastName:      "Koné",
			StartDate:     start,
			EndDate:       end,
			DurationHours: 3,
			TotalPrice:    1500,
			Status:        domain.StatusPending,
		},
		Quote:       calculator.Quote{DurationHours: 3, TotalPrice: 1500},
		ParkingName: "Parking Gare Nord",
	}, nil)

	rec := serve(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "r-1", resp.Reservation.ID)
	assert.Equal(t, "Parking Gare Nord", resp.ParkingName)
	assert.Equal(t, 3, resp.DurationHours)
	assert.Equal(t, "1 500 FCFA", resp.TotalPriceFormatted)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantField  string
	}{
		{
			name:       "missing field",
			err:        &calculator.ValidationError{Field: calculator.FieldLastName, Kind: calculator.ErrMissingField},
			wantStatus: http.StatusBadRequest,
			wantField:  calculator.FieldLastName,
		},
		{
			name:       "bad interval",
			err:        &calculator.ValidationError{Field: calculator.FieldEndDate, Kind: calculator.ErrInvalidInterval},
			wantStatus: http.StatusBadRequest,
			wantField:  calculator.FieldEndDate,
		},
		{
			name:       "parking not selected",
			err:        create_reservation.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantField:  "parkingId",
		},
		{
			name:       "parking not found",
			err:        create_reservation.ErrParkingNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "parking API down",
			err:        create_reservation.ErrServiceUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "remote rejection passthrough",
			err:        &parkingapi.RemoteError{Status: http.StatusUnprocessableEntity, Message: "Parking full"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "unexpected",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			h := NewHandler(uc, time.UTC, logger.NewNop())
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			assert.Equal(t, tt.wantField, resp.Field)
		})
	}
}

func TestHandle_RawDatesReachUseCase(t *testing.T) {
	uc := new(MockUseCase)
	h := NewHandler(uc, time.UTC, logger.NewNop())

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *create_reservation.Request) bool {
		return req.StartDate == "" && req.EndDate == "tomorrow"
	})).Return(nil, &calculator.ValidationError{Field: calculator.FieldStartDate, Kind: calculator.ErrMissingField})

	rec := serve(h, `{"parkingId":"2","firstName":"Awa","lastName":"Koné","email":"awa@example.com","phone":"0712345678","endDate":"tomorrow"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_MissingNameReportedBeforeBadDate(t *testing.T) {
	parkings := new(MockParkingFinder)
	uc := create_reservation.NewUseCase(parkings, nil, time.UTC, logger.NewNop())
	h := NewHandler(uc, time.UTC, logger.NewNop())

	rec := serve(h, `{"parkingId":"2","firstName":"","lastName":"Koné","email":"awa@example.com","phone":"0712345678","startDate":"tomorrow"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, calculator.FieldFirstName, resp.Field)
	parkings.AssertNotCalled(t, "GetParkingByID", mock.Anything, mock.Anything)
}

func TestHandle_UnparseableDateField(t *testing.T) {
	uc := create_reservation.NewUseCase(new(MockParkingFinder), nil, time.UTC, logger.NewNop())
	h := NewHandler(uc, time.UTC, logger.NewNop())

	rec := serve(h, `{"parkingId":"2","firstName":"Awa","lastName":"Koné","email":"awa@example.com","phone":"0712345678","startDate":"tomorrow","endDate":"2026-03-20T12:30"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, calculator.FieldStartDate, resp.Field)
}

func TestHandle_InvalidInput(t *testing.T) {
	uc := new(MockUseCase)
	h := NewHandler(uc, time.UTC, logger.NewNop())

	t.Run("broken json", func(t *testing.T) {
		rec := serve(h, `{"parkingId":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
