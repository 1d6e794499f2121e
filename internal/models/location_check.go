package models

import (
	"time"
)

// LocationCheck представляет запись о проверке местоположения пользователя
type LocationCheck struct {
	ID             int64     `json:"id"`
	UserID         *int64    `json:"user_id,omitempty"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	ZoneName       string    `json:"zone_name,omitempty"`
	HasActiveAlert bool      `json:"has_active_alert"`
	CheckedAt      time.Time `json:"checked_at"`
}
