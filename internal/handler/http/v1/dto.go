package v1

import (
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/allocation"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	UserID    *int64   `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationStatusResponse DTO для ответа о зоне и тревоге
// @Description DTO для ответа о зоне и тревоге
type LocationStatusResponse struct {
	IsInZone              bool      `json:"is_in_zone"`
	ZoneName              string    `json:"zone_name,omitempty"`
	HasActiveAlert        bool      `json:"has_active_alert"`
	Message               string    `json:"message"`
	ResponseTimeRemaining *int      `json:"response_time_remaining,omitempty"`
	Timestamp             time.Time `json:"timestamp"`
}

// UserLocationRequest DTO для запроса маршрута и обновления местоположения
// @Description DTO с координатами пользователя
type UserLocationRequest struct {
	UserID    int64    `json:"user_id" validate:"required,gt=0"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// CoordinateDTO - точка в WGS84
type CoordinateDTO struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ShelterResponse DTO для ответа с информацией об убежище
// @Description DTO для ответа с информацией об убежище
type ShelterResponse struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Address    string               `json:"address,omitempty"`
	Location   CoordinateDTO        `json:"location"`
	DistanceKm float64              `json:"distance_km"`
	Capacity   int                  `json:"capacity"`
	Occupancy  int                  `json:"occupancy"`
	Status     models.ShelterStatus `json:"status,omitempty"`
}

// RouteDTO - маршрут до убежища
type RouteDTO struct {
	DistanceKm      float64         `json:"distance_km"`
	DurationSeconds int             `json:"duration_seconds"`
	Polyline        string          `json:"polyline,omitempty"`
	Points          []CoordinateDTO `json:"points,omitempty"`
	Instructions    []string        `json:"instructions,omitempty"`
}

// ShelterRouteResponse DTO для ответа на запрос маршрута
// @Description DTO для ответа на запрос маршрута
type ShelterRouteResponse struct {
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
	HasArrived     bool             `json:"has_arrived"`
	Shelter        *ShelterResponse `json:"shelter,omitempty"`
	Route          *RouteDTO        `json:"route,omitempty"`
	RequiresAction bool             `json:"requires_action"`
	ActionType     string           `json:"action_type,omitempty"`
}

// LocationUpdateResponse DTO для ответа на обновление местоположения
// @Description DTO для ответа на обновление местоположения
type LocationUpdateResponse struct {
	HasArrived             bool      `json:"has_arrived"`
	DistanceRemaining      float64   `json:"distance_remaining"`
	EstimatedTimeRemaining int       `json:"estimated_time_remaining"`
	Status                 string    `json:"status"`
	RequiresAction         bool      `json:"requires_action"`
	ActionType             string    `json:"action_type,omitempty"`
	Route                  *RouteDTO `json:"route,omitempty"`
}

// EmergencyStatusResponse DTO для ответа о состоянии пользователя
// @Description DTO для ответа о состоянии пользователя
type EmergencyStatusResponse struct {
	IsAlertActive bool   `json:"is_alert_active"`
	UserStatus    string `json:"user_status"`
	ShelterID     *int64 `json:"shelter_id,omitempty"`
	TimeInShelter *int   `json:"time_in_shelter,omitempty"`
}

// AreaShelterResponse - убежище в сводке по району
type AreaShelterResponse struct {
	ID                  int64                `json:"id"`
	Name                string               `json:"name"`
	Address             string               `json:"address,omitempty"`
	Location            CoordinateDTO        `json:"location"`
	Capacity            int                  `json:"capacity"`
	Occupancy           int                  `json:"occupancy"`
	AvailableSpaces     int                  `json:"available_spaces"`
	OccupancyPercentage float64              `json:"occupancy_percentage"`
	Status              models.ShelterStatus `json:"status"`
	DistanceKm          float64              `json:"distance_km"`
}

// AreaStatusResponse DTO для сводки по убежищам района
// @Description DTO для сводки по убежищам района
type AreaStatusResponse struct {
	TotalShelters     int                   `json:"total_shelters"`
	AvailableShelters int                   `json:"available_shelters"`
	FullShelters      int                   `json:"full_shelters"`
	Shelters          []AreaShelterResponse `json:"shelters"`
}

// PersonRequest - участник прогона распределения
type PersonRequest struct {
	ID        int64    `json:"id" validate:"required,gt=0"`
	Age       int      `json:"age" validate:"gte=0,lte=150"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// ShelterInput - убежище, переданное в автономный прогон
type ShelterInput struct {
	ID        int64    `json:"id" validate:"required,gt=0"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Capacity  int      `json:"capacity" validate:"gte=0"`
	Occupancy int      `json:"occupancy" validate:"gte=0"`
}

// FamilyRequest - семья, распределяемая целиком
type FamilyRequest struct {
	ID        int64   `json:"id"`
	MemberIDs []int64 `json:"member_ids" validate:"required,min=1"`
}

// SettingsRequest - параметры прогона; незаданные поля берутся из конфигурации
type SettingsRequest struct {
	AgePriority          *bool   `json:"age_priority,omitempty"`
	TravelTimeMinutes    float64 `json:"travel_time_minutes,omitempty" validate:"gte=0"`
	WalkingSpeedKmPerMin float64 `json:"walking_speed_km_per_min,omitempty" validate:"gte=0"`
}

// RunAllocationRequest DTO для автономного прогона распределения
// @Description DTO для автономного прогона распределения
type RunAllocationRequest struct {
	People   []PersonRequest  `json:"people" validate:"required,min=1,dive"`
	Shelters []ShelterInput   `json:"shelters,omitempty" validate:"dive"`
	Families []FamilyRequest  `json:"families,omitempty" validate:"dive"`
	Settings *SettingsRequest `json:"settings,omitempty"`
}

// AlertAllocationRequest DTO для распределения по тревоге
// @Description DTO для распределения по тревоге
type AlertAllocationRequest struct {
	People   []PersonRequest  `json:"people" validate:"required,min=1,dive"`
	Families []FamilyRequest  `json:"families,omitempty" validate:"dive"`
	Settings *SettingsRequest `json:"settings,omitempty"`
}

// AssignmentResponse - назначение одного человека
type AssignmentResponse struct {
	PersonID   int64   `json:"person_id"`
	ShelterID  int64   `json:"shelter_id"`
	DistanceKm float64 `json:"distance_km"`
}

// AllocationResponse DTO для итогов прогона
// @Description DTO для итогов прогона
type AllocationResponse struct {
	Assignments []AssignmentResponse  `json:"assignments"`
	Unassigned  []int64               `json:"unassigned"`
	Statistics  allocation.Statistics `json:"statistics"`
}

// SweepResponse DTO для итогов завершения тревоги
// @Description DTO для итогов завершения тревоги
type SweepResponse struct {
	AlertID   int64 `json:"alert_id"`
	Released  int   `json:"released"`
	Completed int64 `json:"completed"`
	Purged    int64 `json:"purged"`
}

// CreateShelterRequest DTO для регистрации убежища
// @Description DTO для регистрации убежища
type CreateShelterRequest struct {
	Name       string   `json:"name" validate:"required,min=2,max=255"`
	Address    string   `json:"address,omitempty" validate:"max=512"`
	ProviderID string   `json:"provider_id,omitempty" validate:"max=255"`
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
	Capacity   int      `json:"capacity" validate:"gte=0"`
	Occupancy  int      `json:"occupancy" validate:"gte=0,ltefield=Capacity"`
}

// CreateZoneRequest DTO для регистрации зоны тревоги
// @Description DTO для регистрации зоны тревоги
type CreateZoneRequest struct {
	Name                  string          `json:"name" validate:"required,min=2,max=255"`
	Polygon               []CoordinateDTO `json:"polygon" validate:"required,min=3,dive"`
	ResponseBudgetSeconds int             `json:"response_budget_seconds" validate:"required,gt=0"`
}

// ZoneResponse DTO для ответа с информацией о зоне
// @Description DTO для ответа с информацией о зоне
type ZoneResponse struct {
	ID                    int64           `json:"id"`
	Name                  string          `json:"name"`
	Polygon               []CoordinateDTO `json:"polygon"`
	ResponseBudgetSeconds int             `json:"response_budget_seconds"`
	CreatedAt             time.Time       `json:"created_at"`
}

// StartAlertRequest DTO для объявления тревоги
// @Description DTO для объявления тревоги
type StartAlertRequest struct {
	ZoneID int64 `json:"zone_id" validate:"required,gt=0"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID        int64         `json:"id"`
	ZoneID    int64         `json:"zone_id"`
	ZoneName  string        `json:"zone_name"`
	StartedAt time.Time     `json:"started_at"`
	Center    CoordinateDTO `json:"center"`
	Active    bool          `json:"active"`
}
