package healthmonitor

import "context"

// Prober проверка доступности parking API
type Prober interface {
	CheckAvailability(ctx context.Context) bool
}

// Gauge публикация состояния доступности
type Gauge interface {
	SetUpstreamAvailable(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
