package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"

	"github.com/m04kA/SMC-ParkingPortal/pkg/requestid"
)

// CORS разрешает запросы фронтенда с указанных origin
// Оборачивает весь роутер: preflight OPTIONS не доходит до маршрутов mux
func CORS(origins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", requestid.Header}),
		handlers.ExposedHeaders([]string{requestid.Header}),
	)
}
