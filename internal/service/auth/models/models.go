package models

import (
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

// RegisterRequest данные для регистрации
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// UserResponse пользователь в ответе авторизации
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse ответ на login/register
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromAuthResult конвертирует результат клиента в ответ сервиса
func FromAuthResult(r *parkingapi.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token: r.Token,
		User: UserResponse{
			ID:    r.User.ID,
			Email: r.User.Email,
			Role:  string(r.User.Role),
		},
	}
}

// ToClientRequest конвертирует запрос в модель клиента
func (r *RegisterRequest) ToClientRequest() *parkingapi.RegisterRequest {
	return &parkingapi.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
	}
}
