package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingPortal/pkg/requestid"
)

// RequestID берет X-Request-ID из запроса или генерирует новый, кладет в контекст и в ответ
// Клиент parking API пробрасывает его дальше
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(requestid.Header, id)
		next.ServeHTTP(w, r.WithContext(requestid.WithID(r.Context(), id)))
	})
}
