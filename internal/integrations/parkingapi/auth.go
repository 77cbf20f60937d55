package parkingapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// Login выполняет вход
// API доступен -> POST /auth/login; недоступен -> поиск в локальной таблице и локальный токен
// Форма результата одинакова в обоих случаях
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if !c.CheckAvailability(ctx) {
		c.log.Warn("Login: parking API unavailable, using local users for email=%s", email)
		return c.localLogin(email, password)
	}

	var rec authRecord
	if err := c.doJSON(ctx, opLogin, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &rec); err != nil {
		c.log.Warn("Login: remote login failed for email=%s: %v", email, err)
		return nil, err
	}

	result, err := toAuthResult(rec)
	if err != nil {
		return nil, err
	}

	c.log.Info("Login: remote login succeeded for email=%s, role=%s", email, result.User.Role)
	return result, nil
}

// Register регистрирует пользователя
// В локальном режиме пользователь НЕ сохраняется в таблицу: запись живет только в ответе
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error) {
	if !c.CheckAvailability(ctx) {
		c.log.Warn("Register: parking API unavailable, registering locally for email=%s", req.Email)
		return c.localRegister(req)
	}

	var rec authRecord
	if err := c.doJSON(ctx, opRegister, http.MethodPost, "/auth/register", req, &rec); err != nil {
		c.log.Warn("Register: remote register failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	result, err := toAuthResult(rec)
	if err != nil {
		return nil, err
	}

	c.log.Info("Register: remote register succeeded for email=%s", req.Email)
	return result, nil
}

func (c *Client) localLogin(email, password string) (*AuthResult, error) {
	for _, acc := range c.users {
		if acc.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err == nil {
			user := domain.User{ID: acc.ID, Email: acc.Email, Role: acc.Role}
			return c.localAuthResult(user)
		}
	}

	c.log.Warn("Login: local credentials rejected for email=%s", email)
	return nil, ErrInvalidCredentials
}

func (c *Client) localRegister(req *RegisterRequest) (*AuthResult, error) {
	for _, acc := range c.users {
		if strings.EqualFold(acc.Email, req.Email) {
			c.log.Warn("Register: email=%s already exists in local users", req.Email)
			return nil, ErrDuplicateEmail
		}
	}

	user := domain.User{
		ID:    fmt.Sprintf("mock-%d", c.now().UnixMilli()),
		Email: req.Email,
		Role:  domain.RoleUser,
	}
	return c.localAuthResult(user)
}

func (c *Client) localAuthResult(user domain.User) (*AuthResult, error) {
	token, err := mintLocalToken(c.tokenSecret, user, c.now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func toAuthResult(rec authRecord) (*AuthResult, error) {
	if rec.Token == "" {
		return nil, fmt.Errorf("%w: auth response without token", ErrInvalidResponse)
	}

	return &AuthResult{
		Token: rec.Token,
		User: domain.User{
			ID:    recordID(rec.User.MongoID, rec.User.ID),
			Email: rec.User.Email,
			Role:  domain.Role(rec.User.Role),
		},
	}, nil
}
