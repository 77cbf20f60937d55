package domain

import "time"

// Registration запись о том, что подтвержденное бронирование зарегистрировано как клиент
type Registration struct {
	ReservationID string
	ClientID      string
	RegisteredAt  time.Time
}
