package models

import "time"

// AlertZone - именованный полигон, в котором может быть объявлена тревога
type AlertZone struct {
	ID                    int64        `json:"id"`
	Name                  string       `json:"name"`
	Polygon               []Coordinate `json:"polygon"`
	ResponseBudgetSeconds int          `json:"response_budget_seconds"`
	CreatedAt             time.Time    `json:"created_at"`
}

// ActiveAlert - объявленная тревога для одной зоны
type ActiveAlert struct {
	ID        int64      `json:"id"`
	ZoneID    int64      `json:"zone_id"`
	ZoneName  string     `json:"zone_name"`
	StartedAt time.Time  `json:"started_at"`
	Center    Coordinate `json:"center"`
	Active    bool       `json:"active"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}
