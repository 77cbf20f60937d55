package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные данные регистрации"
	msgEmailTaken         = "пользователь с таким email уже существует"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := handlers.ValidateStruct(req); fields != nil {
		h.logger.Warn("POST /auth/register - Invalid fields: %v", fields)
		handlers.RespondInvalidFields(w, msgInvalidFields, fields)
		return
	}

	result, err := h.service.Register(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case handlers.RespondValidationError(w, err):
			h.logger.Warn("POST /auth/register - Validation failed: %v", err)

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFields)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("POST /auth/register - Parking API rejected registration: email=%s, error=%v", req.Email, err)

		default:
			h.logger.Error("POST /auth/register - Failed to register: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - Registered: user_id=%s", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
