package create_parking

import (
	"errors"
	"net/http"

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

// Handle POST /api/v1/admin/parkings
// Принимает JSON или multipart/form-data с файлом image
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, image, err := handlers.ParseParkingForm(r)
	if err != nil {
		h.logger.Warn("POST /admin/parkings - Invalid form: %v", err)
		if errors.Is(err, handlers.ErrInvalidImage) {
			handlers.RespondBadRequest(w, msgInvalidImage)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	if fields := handlers.ValidateStruct(form); fields != nil {
		h.logger.Warn("POST /admin/parkings - Invalid fields: %v", fields)
		handlers.RespondInvalidFields(w, msgInvalidFields, fields)
		return
	}

	parking, err := h.service.Create(r.Context(), form.ToPayload(image))
	if err != nil {
		switch {
		case errors.Is(err, parkings.ErrInvalidInput):
			h.logger.Warn("POST /admin/parkings - Invalid parking: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("POST /admin/parkings - Parking API error: %v", err)

		default:
			h.logger.Error("POST /admin/parkings - Failed to create parking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/parkings - Parking created: parking_id=%s, with_image=%t", parking.ID, image != nil)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromDomainParking(parking))
}
