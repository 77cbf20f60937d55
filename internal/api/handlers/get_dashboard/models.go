package get_dashboard

import "github.com/m04kA/SMC-ParkingPortal/internal/api/handlers"

// StatsDTO сводные показатели
type StatsDTO struct {
	TotalClients          int     `json:"totalClients"`
	TotalParkings         int     `json:"totalParkings"`
	TotalReservations     int     `json:"totalReservations"`
	PendingReservations   int     `json:"pendingReservations"`
	ConfirmedReservations int     `json:"confirmedReservations"`
	Revenue               float64 `json:"revenue"`
	RevenueFormatted      string  `json:"revenueFormatted"`
}

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Stats          StatsDTO                  `json:"stats"`
	Recent         []handlers.ReservationDTO `json:"recentReservations"`
	Upcoming       []handlers.ReservationDTO `json:"upcomingReservations"`
	ParkingsSource string                    `json:"parkingsSource"`
}
