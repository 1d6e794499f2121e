package service

import (
	"github.com/shenikar/shelter_dispatch_system/internal/allocation"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// Действия, которые клиент должен предпринять
const (
	ActionNavigate        = "NAVIGATE_TO_SHELTER"
	ActionFindCover       = "FIND_NEAREST_COVER"
	ActionReturnToShelter = "RETURN_TO_SHELTER"
	ActionRouteUpdated    = "ROUTE_UPDATED"
)

// UserStatusSafe - статус пользователя без активного назначения
const UserStatusSafe = "SAFE"

type ShelterDetails struct {
	ID         int64
	Name       string
	Address    string
	Location   models.Coordinate
	DistanceKm float64
	Capacity   int
	Occupancy  int
	Status     models.ShelterStatus
}

type RouteResponse struct {
	Success        bool
	Message        string
	HasArrived     bool
	Shelter        *ShelterDetails
	Route          *models.RouteSummary
	RequiresAction bool
	ActionType     string
}

type LocationUpdate struct {
	HasArrived             bool
	DistanceRemaining      float64
	EstimatedTimeRemaining int
	Status                 models.AllocationStatus
	RequiresAction         bool
	ActionType             string
	// Route заполняется, если маршрут был пересчитан
	Route *models.RouteSummary
}

type EmergencyStatus struct {
	IsAlertActive bool
	UserStatus    string
	ShelterID     *int64
	// TimeInShelter - секунды с момента прибытия
	TimeInShelter *int
}

type AreaShelter struct {
	ID                  int64
	Name                string
	Address             string
	Location            models.Coordinate
	Capacity            int
	Occupancy           int
	AvailableSpaces     int
	OccupancyPercentage float64
	Status              models.ShelterStatus
	DistanceKm          float64
}

type AreaStatus struct {
	TotalShelters     int
	AvailableShelters int
	FullShelters      int
	Shelters          []AreaShelter
}

// AllocationRequest - входные данные прогона распределения
type AllocationRequest struct {
	People   []models.Person
	Shelters []*models.Shelter
	Families []models.Family
	// Settings заменяет настройки из конфигурации, если задан
	Settings *allocation.Settings
}

type AllocationOutcome struct {
	Result     allocation.Result
	Statistics allocation.Statistics
}

// SweepResult - итог завершения тревоги
type SweepResult struct {
	AlertID   int64
	Released  int
	Completed int64
	Purged    int64
}
