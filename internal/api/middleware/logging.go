package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"

	"github.com/m04kA/SMC-ParkingPortal/pkg/requestid"
)

// Logging пишет строку лога на каждый запрос
func Logging(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			id, _ := requestid.FromContext(r.Context())
			if rec.status >= http.StatusInternalServerError {
				logger.Error("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), id)
				return
			}
			logger.Info("%s %s - status=%d duration=%s request_id=%s", r.Method, r.URL.Path, rec.status, time.Since(start), id)
		})
	}
}

// Recovery перехватывает панику в обработчике и отвечает 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{logger: logger}))
}

type recoveryLogger struct {
	logger Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic recovered: %s", fmt.Sprint(v...))
}
