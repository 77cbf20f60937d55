package list_parkings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/parkings/models"
	"github.com/m04kA/SMC-ParkingPortal/pkg/logger"
)

type MockParkingService struct {
	mock.Mock
}

func (m *MockParkingService) List(ctx context.Context) *models.ParkingListResponse {
	args := m.Called(ctx)
	return args.Get(0).(*models.ParkingListResponse)
}

func TestHandle(t *testing.T) {
	svc := new(MockParkingService)
	h := NewHandler(svc, logger.NewNop())
	svc.On("List", mock.Anything).Return(&models.ParkingListResponse{
		Parkings: []domain.Parking{
			{ID: "1", Name: "Plateau", TotalSpots: 50, AvailableSpots: 10, PricePerHour: 500, IsActive: true},
			{ID: "2", Name: "Fermé", TotalSpots: 20, IsActive: false},
		},
		Source: parkingapi.SourceFallback,
	})

	t.Run("all parkings", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parkings", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ParkingListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Parkings, 2)
		assert.Equal(t, string(parkingapi.SourceFallback), resp.Source)
		assert.Equal(t, 40, resp.Parkings[0].OccupiedSpots)
		assert.Equal(t, "500 FCFA", resp.Parkings[0].PricePerHourFormatted)
	})

	t.Run("active only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parkings?active=true", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ParkingListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Parkings, 1)
		assert.Equal(t, "1", resp.Parkings[0].ID)
	})

	t.Run("bad filter", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/parkings?active=maybe", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
