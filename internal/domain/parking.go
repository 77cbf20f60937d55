package domain

// Parking represents a managed parking facility
type Parking struct {
	ID             string
	Name           string
	Address        string
	TotalSpots     int
	AvailableSpots int
	PricePerHour   float64
	Image          *string // URL или nil
	IsActive       bool
	Description    string
	Services       []string
	OpeningHours   string
}

// OccupiedSpots returns the number of taken spots
func (p *Parking) OccupiedSpots() int {
	if p.AvailableSpots > p.TotalSpots {
		return 0
	}
	return p.TotalSpots - p.AvailableSpots
}

// IsFull returns true if the parking has no available spots
func (p *Parking) IsFull() bool {
	return p.AvailableSpots <= 0
}

// HasConsistentSpots returns true if 0 <= availableSpots <= totalSpots
func (p *Parking) HasConsistentSpots() bool {
	return p.AvailableSpots >= 0 && p.AvailableSpots <= p.TotalSpots
}
