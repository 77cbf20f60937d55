package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "email и пароль обязательны"
	msgInvalidCredentials = "неверный email или пароль"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fields := handlers.ValidateStruct(req); fields != nil {
		h.logger.Warn("POST /auth/login - Invalid fields: %v", fields)
		handlers.RespondInvalidFields(w, msgInvalidFields, fields)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFields)

		case handlers.RespondUpstreamError(w, err):
			h.logger.Warn("POST /auth/login - Parking API rejected login: email=%s, error=%v", req.Email, err)

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Logged in: user_id=%s, role=%s", result.User.ID, result.User.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
