package models

import "time"

// RouteSummary - краткое описание маршрута до убежища
type RouteSummary struct {
	DistanceKm      float64      `json:"distance_km"`
	DurationSeconds int          `json:"duration_seconds"`
	Polyline        string       `json:"polyline,omitempty"`
	Points          []Coordinate `json:"points,omitempty"`
	Instructions    []string     `json:"instructions,omitempty"`
}

// TrackingSession - состояние отслеживания пользователя на пути к убежищу
type TrackingSession struct {
	UserID       int64            `json:"user_id"`
	AllocationID int64            `json:"allocation_id"`
	ShelterID    int64            `json:"shelter_id"`
	AlertID      int64            `json:"alert_id"`
	LastLocation Coordinate       `json:"last_location"`
	LastUpdateAt time.Time        `json:"last_update_at"`
	Status       AllocationStatus `json:"status"`
	Route        *RouteSummary    `json:"route,omitempty"`
	Active       bool             `json:"active"`
}
