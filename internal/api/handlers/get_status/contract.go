package get_status

import "context"

type StatusProber interface {
	CheckAvailability(ctx context.Context) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
