package service

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/shenikar/shelter_dispatch_system/internal/routecache"
	"github.com/shenikar/shelter_dispatch_system/pkg/routing"
)

// Repository - хранилище сущностей сервиса.
// Методы Get* возвращают ошибку вида NotFound для отсутствующих записей,
// GetActiveAllocation и GetSession возвращают nil, nil.
type Repository interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)

	CreateShelter(ctx context.Context, shelter *models.Shelter) error
	GetShelter(ctx context.Context, id int64) (*models.Shelter, error)
	ListActiveShelters(ctx context.Context) ([]*models.Shelter, error)
	ListSheltersWithin(ctx context.Context, lat, lon, radiusKm float64) ([]*models.Shelter, error)
	ApplyOccupancyDeltas(ctx context.Context, deltas map[int64]int) error

	CreateZone(ctx context.Context, zone *models.AlertZone) error
	GetZone(ctx context.Context, id int64) (*models.AlertZone, error)
	ListZones(ctx context.Context) ([]*models.AlertZone, error)

	StartAlert(ctx context.Context, alert *models.ActiveAlert) error
	GetAlert(ctx context.Context, id int64) (*models.ActiveAlert, error)
	ListActiveAlerts(ctx context.Context) ([]*models.ActiveAlert, error)
	EndAlert(ctx context.Context, id int64, endedAt time.Time) error

	CreateAllocations(ctx context.Context, allocations []*models.Allocation) error
	GetActiveAllocation(ctx context.Context, userID int64) (*models.Allocation, error)
	ListActiveAllocationsByAlert(ctx context.Context, alertID int64) ([]*models.Allocation, error)
	UpdateAllocationStatus(ctx context.Context, id int64, status models.AllocationStatus, arrivedAt *time.Time) error
	CompleteAllocations(ctx context.Context, alertID int64, ids []int64) (int64, error)
	PurgeStaleAllocations(ctx context.Context, alertID int64) (int64, error)

	SaveSession(ctx context.Context, session *models.TrackingSession) error
	GetSession(ctx context.Context, userID int64) (*models.TrackingSession, error)
	DeactivateSessionsByAlert(ctx context.Context, alertID int64) error

	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
}

// RouteCache - кэш расстояний и маршрутов поверх сервиса маршрутизации
type RouteCache interface {
	Distances(ctx context.Context, pairs []routecache.Pair) []routecache.DistanceResult
	Distance(ctx context.Context, origin, destination routing.Point) routecache.DistanceResult
	Route(ctx context.Context, origin, destination routing.Point) *routing.Route
}
