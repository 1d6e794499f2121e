package models

import "time"

// AllocationStatus - состояние назначения пользователя в убежище
type AllocationStatus string

const (
	StatusEnRoute     AllocationStatus = "EN_ROUTE"
	StatusArrived     AllocationStatus = "ARRIVED"
	StatusLeftShelter AllocationStatus = "LEFT_SHELTER"
	StatusCompleted   AllocationStatus = "COMPLETED"
)

// IsTerminal сообщает, что назначение больше не отслеживается
func (s AllocationStatus) IsTerminal() bool {
	return s == StatusCompleted
}

type Allocation struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	ShelterID   int64            `json:"shelter_id"`
	AlertID     int64            `json:"alert_id"`
	AllocatedAt time.Time        `json:"allocated_at"`
	ArrivedAt   *time.Time       `json:"arrived_at,omitempty"`
	Status      AllocationStatus `json:"status"`
	DistanceKm  float64          `json:"distance_km"`
}
