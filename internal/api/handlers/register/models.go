package register

import "github.com/m04kA/SMC-ParkingPortal/internal/service/auth/models"

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
	}
}
