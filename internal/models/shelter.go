package models

import "time"

type Shelter struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	ProviderID string     `json:"provider_id"`
	Location   Coordinate `json:"location"`
	Capacity   int        `json:"capacity"`
	Occupancy  int        `json:"occupancy"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Remaining возвращает количество свободных мест
func (s *Shelter) Remaining() int {
	if s.Occupancy >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Occupancy
}

// ShelterStatus - классификация заполненности убежища
type ShelterStatus string

const (
	ShelterFull       ShelterStatus = "FULL"
	ShelterAlmostFull ShelterStatus = "ALMOST_FULL"
	ShelterModerate   ShelterStatus = "MODERATE"
	ShelterAvailable  ShelterStatus = "AVAILABLE"
)
