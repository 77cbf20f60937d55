package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation
// Values outside the known set are kept as received and never match any of them
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ParseReservationStatus конвертирует строку в статус
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return ReservationStatus(s), true
	default:
		return "", false
	}
}

// Reservation represents a time-boxed booking of a parking spot
type Reservation struct {
	ID          string
	ParkingID   string
	ParkingName string // заполняется, если API вернул вложенный parking

	FirstName string
	LastName  string
	Email     string
	Phone     string

	VehiclePlate string
	VehicleModel string

	StartDate     time.Time
	EndDate       time.Time
	DurationHours int
	TotalPrice    float64
	Status        ReservationStatus

	CreatedAt time.Time
}

// FullName returns "first last", trimmed when one part is missing
func (r *Reservation) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}

// IsPending returns true if the reservation waits for an administrator decision
func (r *Reservation) IsPending() bool {
	return r.Status == StatusPending
}

// IsConfirmed returns true if the reservation has been confirmed
func (r *Reservation) IsConfirmed() bool {
	return r.Status == StatusConfirmed
}

// CanTransitionTo returns true if an administrator may move the reservation to the given status
// pending -> confirmed | cancelled, confirmed -> cancelled
func (r *Reservation) CanTransitionTo(status ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return status == StatusConfirmed || status == StatusCancelled
	case StatusConfirmed:
		return status == StatusCancelled
	default:
		return false
	}
}

// FilterByStatus returns reservations with the given status, preserving order
func FilterByStatus(reservations []Reservation, status ReservationStatus) []Reservation {
	result := make([]Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.Status == status {
			result = append(result, r)
		}
	}
	return result
}
