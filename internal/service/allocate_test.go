package service

import (
	"context"
	"testing"

	"github.com/shenikar/shelter_dispatch_system/internal/allocation"
	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/shenikar/shelter_dispatch_system/internal/routecache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func personAt(id int64, age int, lat float64) models.Person {
	return models.Person{ID: id, Age: age, Location: models.Coordinate{Latitude: lat, Longitude: 34.8}}
}

func TestRunAllocation_TenPeopleTwoShelters(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	ctx := context.Background()
	ages := []int{75, 8, 30, 30, 65, 16, 40, 30, 5, 80}
	people := make([]models.Person, 0, len(ages))
	for i, age := range ages {
		people = append(people, personAt(int64(i+1), age, 32.0+float64(i)*0.0002))
	}

	// Ожидания
	deps.routes.EXPECT().Distances(ctx, gomock.Len(20)).DoAndReturn(haversineDistances).Times(1)

	// Действие
	outcome, err := svc.RunAllocation(ctx, AllocationRequest{People: people, Shelters: testShelters()})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 10, outcome.Statistics.AssignedCount)
	assert.Equal(t, 0, outcome.Statistics.UnassignedCount)
	assert.Equal(t, 100.0, outcome.Statistics.AssignmentPercentage)
	counts := map[int64]int{}
	for _, a := range outcome.Result.Assignments {
		counts[a.ShelterID]++
	}
	assert.Equal(t, 5, counts[1])
	assert.Equal(t, 5, counts[2])
	// Прогон без резервирования не меняет учет
	assert.Equal(t, 0, deps.ledger.Remaining(1))
}

func TestRunAllocation_LoadsSheltersWhenNoneSupplied(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	ctx := context.Background()
	settings := allocation.Settings{AgePriority: false, TravelTimeMinutes: 10, WalkingSpeedKmPerMin: 0.6}

	// Ожидания
	deps.repo.EXPECT().ListActiveShelters(ctx).Return(testShelters(), nil).Times(1)
	deps.routes.EXPECT().Distances(ctx, gomock.Any()).DoAndReturn(haversineDistances).Times(1)

	// Действие
	outcome, err := svc.RunAllocation(ctx, AllocationRequest{
		People:   []models.Person{personAt(1, 30, 32.004)},
		Settings: &settings,
	})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(2), outcome.Result.Assignments[1].ShelterID)
}

func TestRunAllocation_RoutedDistanceNeverBelowStraightLine(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	ctx := context.Background()

	// Ожидания
	deps.routes.EXPECT().
		Distances(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, pairs []routecache.Pair) []routecache.DistanceResult {
			out := make([]routecache.DistanceResult, len(pairs))
			for i := range out {
				out[i] = routecache.DistanceResult{DistanceKm: 0.001}
			}
			return out
		}).
		Times(1)

	// Действие
	outcome, err := svc.RunAllocation(ctx, AllocationRequest{
		People:   []models.Person{personAt(1, 30, 32.0)},
		Shelters: testShelters(),
	})

	// Проверки
	require.NoError(t, err)
	a := outcome.Result.Assignments[1]
	assert.Equal(t, int64(1), a.ShelterID)
	assert.InDelta(t, 0.111, a.DistanceKm, 0.001)
}

func TestRunAllocation_StraightLineByDefault(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	svc.cfg.RoutedAllocation = false
	ctx := context.Background()

	// Ожидания: провайдер маршрутов не участвует в отборе
	deps.routes.EXPECT().Distances(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	outcome, err := svc.RunAllocation(ctx, AllocationRequest{
		People:   []models.Person{personAt(1, 30, 32.0)},
		Shelters: testShelters(),
	})

	// Проверки
	require.NoError(t, err)
	a := outcome.Result.Assignments[1]
	assert.Equal(t, int64(1), a.ShelterID)
	assert.InDelta(t, 0.111, a.DistanceKm, 0.001)
}

func TestRunAllocation_EmptyPeople(t *testing.T) {
	svc, _ := newTestShelterService(t)

	_, err := svc.RunAllocation(context.Background(), AllocationRequest{})

	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestAllocateAlert_ReservesAndSkipsAllocatedUsers(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	ctx := context.Background()
	shelter := &models.Shelter{ID: 1, Location: models.Coordinate{Latitude: 32.0, Longitude: 34.8}, Capacity: 2, Active: true}
	people := []models.Person{
		personAt(1, 30, 32.0005),
		personAt(2, 30, 32.0009),
		personAt(3, 30, 32.0018),
		personAt(4, 30, 32.0027),
	}

	// Ожидания
	deps.repo.EXPECT().GetAlert(ctx, int64(3)).Return(testAlert(), nil).Times(1)
	deps.repo.EXPECT().
		ListActiveAllocationsByAlert(ctx, int64(3)).
		Return([]*models.Allocation{{ID: 5, UserID: 1, ShelterID: 9, AlertID: 3, Status: models.StatusEnRoute}}, nil).
		Times(1)
	deps.repo.EXPECT().ListActiveShelters(ctx).Return([]*models.Shelter{shelter}, nil).Times(1)
	deps.routes.EXPECT().Distances(ctx, gomock.Len(3)).DoAndReturn(haversineDistances).Times(1)
	deps.repo.EXPECT().ApplyOccupancyDeltas(ctx, map[int64]int{1: 2}).Return(nil).Times(1)
	deps.repo.EXPECT().
		CreateAllocations(ctx, gomock.Len(2)).
		DoAndReturn(func(_ context.Context, allocations []*models.Allocation) error {
			for i, a := range allocations {
				a.ID = int64(100 + i)
			}
			return nil
		}).
		Times(1)
	deps.repo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil).Times(2)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)

	// Действие
	outcome, err := svc.AllocateAlert(ctx, 3, AllocationRequest{People: people})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Statistics.TotalPeople)
	assert.Equal(t, 2, outcome.Statistics.AssignedCount)
	assert.Contains(t, outcome.Result.Assignments, int64(2))
	assert.Contains(t, outcome.Result.Assignments, int64(3))
	assert.Equal(t, []int64{4}, outcome.Result.Unassigned)
	assert.Equal(t, 0, deps.ledger.Remaining(1))
}

func TestAllocateAlert_FamilyKeptTogether(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	ctx := context.Background()
	shelters := []*models.Shelter{
		{ID: 1, Location: models.Coordinate{Latitude: 32.0, Longitude: 34.8}, Capacity: 2, Active: true},
		{ID: 2, Location: models.Coordinate{Latitude: 32.002, Longitude: 34.8}, Capacity: 3, Active: true},
	}
	people := []models.Person{personAt(1, 35, 32.0), personAt(2, 33, 32.0), personAt(3, 6, 32.0)}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 2, 3}}}

	// Ожидания
	deps.repo.EXPECT().GetAlert(ctx, int64(3)).Return(testAlert(), nil).Times(1)
	deps.repo.EXPECT().ListActiveAllocationsByAlert(ctx, int64(3)).Return(nil, nil).Times(1)
	deps.repo.EXPECT().ListActiveShelters(ctx).Return(shelters, nil).Times(1)
	deps.routes.EXPECT().Distances(ctx, gomock.Any()).DoAndReturn(haversineDistances).Times(1)
	deps.repo.EXPECT().ApplyOccupancyDeltas(ctx, map[int64]int{2: 3}).Return(nil).Times(1)
	deps.repo.EXPECT().CreateAllocations(ctx, gomock.Len(3)).Return(nil).Times(1)
	deps.repo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil).Times(3)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(3)

	// Действие
	outcome, err := svc.AllocateAlert(ctx, 3, AllocationRequest{People: people, Families: families})

	// Проверки
	require.NoError(t, err)
	for _, id := range []int64{1, 2, 3} {
		assert.Equal(t, int64(2), outcome.Result.Assignments[id].ShelterID)
	}
	assert.Equal(t, 2, deps.ledger.Remaining(1))
}

func TestAllocateAlert_FamilyJoinsMemberAllocatedEarlier(t *testing.T) {
	// Подготовка: пользователь 1 уже направлен в дальнее убежище 2
	svc, deps := newTestShelterService(t)
	ctx := context.Background()
	shelters := []*models.Shelter{
		{ID: 1, Location: models.Coordinate{Latitude: 32.0, Longitude: 34.8}, Capacity: 5, Active: true},
		{ID: 2, Location: models.Coordinate{Latitude: 32.002, Longitude: 34.8}, Capacity: 5, Active: true},
	}
	people := []models.Person{personAt(1, 35, 32.0), personAt(2, 6, 32.0)}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 2}}}

	// Ожидания
	deps.repo.EXPECT().GetAlert(ctx, int64(3)).Return(testAlert(), nil).Times(1)
	deps.repo.EXPECT().
		ListActiveAllocationsByAlert(ctx, int64(3)).
		Return([]*models.Allocation{{ID: 5, UserID: 1, ShelterID: 2, AlertID: 3, Status: models.StatusEnRoute}}, nil).
		Times(1)
	deps.repo.EXPECT().ListActiveShelters(ctx).Return(shelters, nil).Times(1)
	deps.routes.EXPECT().Distances(ctx, gomock.Len(2)).DoAndReturn(haversineDistances).Times(1)
	deps.repo.EXPECT().ApplyOccupancyDeltas(ctx, map[int64]int{2: 1}).Return(nil).Times(1)
	deps.repo.EXPECT().CreateAllocations(ctx, gomock.Len(1)).Return(nil).Times(1)
	deps.repo.EXPECT().SaveSession(ctx, gomock.Any()).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	outcome, err := svc.AllocateAlert(ctx, 3, AllocationRequest{People: people, Families: families})

	// Проверки
	require.NoError(t, err)
	require.Contains(t, outcome.Result.Assignments, int64(2))
	assert.Equal(t, int64(2), outcome.Result.Assignments[2].ShelterID)
	assert.Equal(t, 5, deps.ledger.Remaining(1))
}

func TestAllocateAlert_InactiveAlert(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	ctx := context.Background()
	alert := testAlert()
	alert.Active = false

	// Ожидания
	deps.repo.EXPECT().GetAlert(ctx, int64(3)).Return(alert, nil).Times(1)

	// Действие
	_, err := svc.AllocateAlert(ctx, 3, AllocationRequest{People: []models.Person{personAt(1, 30, 32.0)}})

	// Проверки
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestGetAreaSheltersStatus(t *testing.T) {
	// Подготовка
	svc, deps := newTestShelterService(t)
	ctx := context.Background()
	shelters := []*models.Shelter{
		{ID: 2, Name: "Far", Location: models.Coordinate{Latitude: 32.01, Longitude: 34.8}, Capacity: 10, Occupancy: 10},
		{ID: 1, Name: "Near", Location: models.Coordinate{Latitude: 32.001, Longitude: 34.8}, Capacity: 10, Occupancy: 8},
	}

	// Ожидания
	deps.repo.EXPECT().ListSheltersWithin(ctx, 32.0, 34.8, 2.0).Return(shelters, nil).Times(1)

	// Действие
	area, err := svc.GetAreaSheltersStatus(ctx, 32.0, 34.8, 2)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 2, area.TotalShelters)
	assert.Equal(t, 1, area.AvailableShelters)
	assert.Equal(t, 1, area.FullShelters)
	require.Len(t, area.Shelters, 2)
	assert.Equal(t, int64(1), area.Shelters[0].ID)
	assert.Equal(t, models.ShelterAlmostFull, area.Shelters[0].Status)
	assert.Equal(t, 2, area.Shelters[0].AvailableSpaces)
	assert.Equal(t, 80.0, area.Shelters[0].OccupancyPercentage)
	assert.Equal(t, models.ShelterFull, area.Shelters[1].Status)
}

func TestGetAreaSheltersStatus_InvalidRadius(t *testing.T) {
	svc, _ := newTestShelterService(t)

	_, err := svc.GetAreaSheltersStatus(context.Background(), 32.0, 34.8, 0)

	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
