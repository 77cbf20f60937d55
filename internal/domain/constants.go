package domain

// Time format constants
const (
	DisplayDateFormat = "02/01/2006 15:04" // dd/MM/yyyy HH:mm
	DateTimeFormat    = "2006-01-02T15:04:05"
)

// Default values
const (
	DefaultOpeningHours = "24h/24, 7j/7"
	DefaultImagePath    = "/images/default-parking.jpg"
	CurrencyLabel       = "FCFA"
)

// Dashboard constants
const (
	DashboardRecentLimit   = 5
	DashboardUpcomingLimit = 5
)
