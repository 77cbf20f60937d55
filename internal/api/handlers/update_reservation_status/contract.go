package update_reservation_status

import "context"

type ReservationService interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
