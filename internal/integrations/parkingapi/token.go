package parkingapi

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-ParkingPortal/internal/domain"
)

// localClaims claims локально выпущенного токена
type localClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// localIssuer значение iss у локальных токенов
const localIssuer = "parking-portal-local"

// mintLocalToken выпускает токен для локального режима
// Без секрета - строка "mock-token-<unix ms>"
func mintLocalToken(secret string, user domain.User, now time.Time) (string, error) {
	if secret == "" {
		return fmt.Sprintf("mock-token-%d", now.UnixMilli()), nil
	}

	claims := localClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   localIssuer,
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign local token: %v", ErrInternal, err)
	}
	return signed, nil
}
