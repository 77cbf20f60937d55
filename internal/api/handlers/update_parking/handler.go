package update_parking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/parkings"
)

const (
	msgInvalidForm   = "некорректные данные парковки"
	msgInvalidImage  = "файл должен быть изображением не больше 5 МБ"
	msgInvalidFields = "проверьте поля парковки"
)

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/parkings/{parkingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	parkingID := mux.Vars(r)["parkingId"]

	form, image, err := handlers.ParseParkingForm(r)
	if err != nil {
		h.logger.Warn("PUT /admin/parkings/{id} - Invalid form: parking_id=%s, error=%v", parkingID, err)
		if errors.Is(err, handlers.ErrInvalidImage) {
			handlers.RespondBadRequest(w, msgInvalidImage)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	if fields := handlers.ValidateStruct(form); fields != nil {
		h.logger.Warn("PUT /admin/parkings/{id} - Invalid fields: parking_id=%s, fields=%v", parkingID, fields)
		handlers.RespondInvalidFields(w, msgInvalidFields, fields)
		return
	}

	parking, err := h.service.Update(r.Context(), parkingID, form.ToPayload(image))
	if err != nil {
		switch {
		case errors.Is(err, parkings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/parkings/{id} - Invalid parking: parking_id=%s, error=%v", parkingID, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("PUT /admin/parkings/{id} - Parking API error: parking_id=%s, error=%v", parkingID, err)

		default:
			h.logger.Error("PUT /admin/parkings/{id} - Failed to update parking: parking_id=%s, error=%v", parkingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/parkings/{id} - Parking updated: parking_id=%s", parkingID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromDomainParking(parking))
}
