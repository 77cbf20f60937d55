package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ParkingPortal/internal/integrations/parkingapi"
)

const bearerPrefix = "Bearer "

// Session создает сессию запроса из заголовка Authorization: Bearer <token>
// Без заголовка сессия пустая; решение об отказе принимает parking API
// Сессия живет только в рамках запроса: шлюз не хранит токены, их хранит фронтенд
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := parkingapi.NewSession()
		if token, ok := BearerToken(r); ok {
			session.SetToken(token)
		}

		next.ServeHTTP(w, r.WithContext(parkingapi.ContextWithSession(r.Context(), session)))
	})
}

// BearerToken достает токен из заголовка Authorization
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
