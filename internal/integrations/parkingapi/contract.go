package parkingapi

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder интерфейс для сбора метрик клиента
type Recorder interface {
	ObserveUpstream(operation, outcome string, duration time.Duration)
	IncFallback(operation, reason string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveUpstream(string, string, time.Duration) {}
func (nopRecorder) IncFallback(string, string)                    {}
