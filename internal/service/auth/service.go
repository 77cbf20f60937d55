package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingPortal/internal/calculator"
	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
	"github.com/m04kA/SMC-ParkingPortal/internal/service/auth/models"
)

// Service сервис авторизации
// Шлюз не хранит состояние: токен возвращается фронтенду и приходит обратно в Authorization
// Сессия из контекста живет до конца запроса, поэтому SetToken и ClearToken действуют только на текущий запрос
type Service struct {
	client AuthClient
	logger Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(client AuthClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Login выполняет вход; токен попадает в сессию текущего запроса и в ответ
func (s *Service) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		s.logger.Warn("Login: empty email or password")
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, parkingapi.ErrInvalidCredentials) {
			s.logger.Warn("Login: invalid credentials for email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed for email=%s: %v", email, err)
		return nil, err
	}

	s.client.Session(ctx).SetToken(result.Token)

	s.logger.Info("Login: user id=%s logged in, role=%s", result.User.ID, result.User.Role)
	return models.FromAuthResult(result), nil
}

// Register регистрирует пользователя; токен попадает в сессию текущего запроса и в ответ
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if req.Password == "" {
		s.logger.Warn("Register: empty password for email=%s", req.Email)
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if err := calculator.ValidateEmail(req.Email); err != nil {
		s.logger.Warn("Register: invalid email=%s", req.Email)
		return nil, err
	}

	result, err := s.client.Register(ctx, req.ToClientRequest())
	if err != nil {
		if errors.Is(err, parkingapi.ErrDuplicateEmail) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	s.client.Session(ctx).SetToken(result.Token)

	s.logger.Info("Register: user id=%s registered", result.User.ID)
	return models.FromAuthResult(result), nil
}

// Logout очищает токен сессии текущего запроса
// Выход на стороне клиента означает удаление токена фронтендом
func (s *Service) Logout(ctx context.Context) {
	s.client.Session(ctx).ClearToken()
	s.logger.Info("Logout: session token cleared")
}
