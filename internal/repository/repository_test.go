package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

var testTime = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

var shelterCols = []string{
	"id", "name", "address", "provider_id", "latitude", "longitude",
	"capacity", "occupancy", "active", "created_at", "updated_at",
}

var allocationCols = []string{
	"id", "user_id", "shelter_id", "alert_id", "allocated_at", "arrived_at", "status", "distance_km",
}

func testPolygon() []models.Coordinate {
	return []models.Coordinate{
		{Latitude: 31.99, Longitude: 34.79},
		{Latitude: 31.99, Longitude: 34.81},
		{Latitude: 32.01, Longitude: 34.81},
		{Latitude: 32.01, Longitude: 34.79},
	}
}

// memZoneCache - кэш зон в памяти для тестов
type memZoneCache struct {
	zones       []*models.AlertZone
	getErr      error
	sets        int
	invalidated int
}

func (c *memZoneCache) Get(context.Context) ([]*models.AlertZone, error) {
	return c.zones, c.getErr
}

func (c *memZoneCache) Set(_ context.Context, zones []*models.AlertZone) error {
	c.zones = zones
	c.sets++
	return nil
}

func (c *memZoneCache) Invalidate(context.Context) error {
	c.zones = nil
	c.invalidated++
	return nil
}

func newMockRepository(t *testing.T, cache ZoneCache) (*Repository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return newRepository(mock, cache), mock
}

func TestGetUser_Found(t *testing.T) {
	// Подготовка
	repo, mock := newMockRepository(t, nil)
	familyID := int64(7)

	// Ожидания
	mock.ExpectQuery("FROM users").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "age", "family_id"}).
			AddRow(int64(1), "Dana", 72, &familyID))

	// Действие
	user, err := repo.GetUser(context.Background(), 1)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 72, user.Age)
	require.NotNil(t, user.FamilyID)
	assert.Equal(t, int64(7), *user.FamilyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	mock.ExpectQuery("FROM users").
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetUser(context.Background(), 42)

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShelter_Success(t *testing.T) {
	// Подготовка
	repo, mock := newMockRepository(t, nil)
	shelter := &models.Shelter{
		Name:       "School gym",
		ProviderID: "prov-1",
		Location:   models.Coordinate{Latitude: 32.001, Longitude: 34.8},
		Capacity:   50,
		Active:     true,
	}

	// Ожидания
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("prov-1", 34.8, 32.001, float64(duplicateShelterMeters)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO shelters").
		WithArgs("School gym", "", "prov-1", 34.8, 32.001, 50, 0, true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(11), testTime, testTime))

	// Действие
	err := repo.CreateShelter(context.Background(), shelter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(11), shelter.ID)
	assert.Equal(t, testTime, shelter.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShelter_DuplicateNearby(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	shelter := &models.Shelter{ProviderID: "prov-1", Location: models.Coordinate{Latitude: 32, Longitude: 34.8}}

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.CreateShelter(context.Background(), shelter)

	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShelter_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	shelter := &models.Shelter{ProviderID: "prov-2"}

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery("INSERT INTO shelters").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.CreateShelter(context.Background(), shelter)

	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestListSheltersWithin_ConvertsRadiusToMeters(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	mock.ExpectQuery("ST_DWithin").
		WithArgs(34.8, 32.0, 1500.0).
		WillReturnRows(pgxmock.NewRows(shelterCols).
			AddRow(int64(1), "A", "Main st 1", "p1", 32.001, 34.8, 5, 2, true, testTime, testTime).
			AddRow(int64(2), "B", "Main st 3", "p2", 32.003, 34.8, 5, 0, true, testTime, testTime))

	shelters, err := repo.ListSheltersWithin(context.Background(), 32.0, 34.8, 1.5)

	require.NoError(t, err)
	require.Len(t, shelters, 2)
	assert.Equal(t, 2, shelters[0].Occupancy)
	assert.InDelta(t, 32.003, shelters[1].Location.Latitude, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetShelter_DatabaseError(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	mock.ExpectQuery("FROM shelters").
		WithArgs(int64(5)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetShelter(context.Background(), 5)

	assert.True(t, apperr.Is(err, apperr.KindPersistenceFailure))
}

func TestApplyOccupancyDeltas_CommitsInShelterOrder(t *testing.T) {
	// Подготовка
	repo, mock := newMockRepository(t, nil)

	// Ожидания
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE shelters SET").
		WithArgs(3, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE shelters SET").
		WithArgs(-2, int64(4)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	// Действие
	err := repo.ApplyOccupancyDeltas(context.Background(), map[int64]int{4: -2, 1: 3, 9: 0})

	// Проверки
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyOccupancyDeltas_CapacityExceededRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE shelters SET").
		WithArgs(6, int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err := repo.ApplyOccupancyDeltas(context.Background(), map[int64]int{1: 6})

	assert.ErrorContains(t, err, "capacity exceeded")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyOccupancyDeltas_Empty(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	require.NoError(t, repo.ApplyOccupancyDeltas(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPolygonEWKBRoundTrip(t *testing.T) {
	data, err := encodePolygon(testPolygon())
	require.NoError(t, err)

	coords, err := decodePolygon(data)

	require.NoError(t, err)
	assert.Equal(t, testPolygon(), coords)
}

func TestCreateZone_InvalidatesCache(t *testing.T) {
	// Подготовка
	cache := &memZoneCache{zones: []*models.AlertZone{{ID: 1}}}
	repo, mock := newMockRepository(t, cache)
	zone := &models.AlertZone{Name: "North District", Polygon: testPolygon(), ResponseBudgetSeconds: 90}

	// Ожидания
	mock.ExpectQuery("INSERT INTO alert_zones").
		WithArgs("North District", pgxmock.AnyArg(), 90).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), testTime))

	// Действие
	err := repo.CreateZone(context.Background(), zone)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(2), zone.ID)
	assert.Equal(t, 1, cache.invalidated)
	assert.Nil(t, cache.zones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateZone_TooFewVertices(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	err := repo.CreateZone(context.Background(), &models.AlertZone{Name: "x", Polygon: testPolygon()[:2]})

	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListZones_CacheHitSkipsDatabase(t *testing.T) {
	cached := []*models.AlertZone{{ID: 1, Name: "North District", Polygon: testPolygon()}}
	repo, mock := newMockRepository(t, &memZoneCache{zones: cached})

	zones, err := repo.ListZones(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, zones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListZones_CacheMissLoadsAndStores(t *testing.T) {
	// Подготовка
	cache := &memZoneCache{}
	repo, mock := newMockRepository(t, cache)
	polygon, err := encodePolygon(testPolygon())
	require.NoError(t, err)

	// Ожидания
	mock.ExpectQuery("FROM alert_zones").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "polygon", "response_budget_seconds", "created_at"}).
			AddRow(int64(1), "North District", polygon, 90, testTime))

	// Действие
	zones, err := repo.ListZones(context.Background())

	// Проверки
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, testPolygon(), zones[0].Polygon)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, zones, cache.zones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListZones_CacheErrorFallsBackToDatabase(t *testing.T) {
	cache := &memZoneCache{getErr: errors.New("redis down")}
	repo, mock := newMockRepository(t, cache)

	mock.ExpectQuery("FROM alert_zones").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "polygon", "response_budget_seconds", "created_at"}))

	zones, err := repo.ListZones(context.Background())

	require.NoError(t, err)
	assert.Empty(t, zones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartAlert_SecondActiveAlertConflicts(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	alert := &models.ActiveAlert{ZoneID: 1, StartedAt: testTime, Center: models.Coordinate{Latitude: 32, Longitude: 34.8}, Active: true}

	mock.ExpectQuery("INSERT INTO active_alerts").
		WithArgs(int64(1), testTime, 34.8, 32.0, true).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	err := repo.StartAlert(context.Background(), alert)

	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveAlerts(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	mock.ExpectQuery("FROM active_alerts").
		WillReturnRows(pgxmock.NewRows([]string{"id", "zone_id", "name", "started_at", "latitude", "longitude", "active", "ended_at"}).
			AddRow(int64(3), int64(1), "North District", testTime, 32.0, 34.8, true, nil))

	alerts, err := repo.ListActiveAlerts(context.Background())

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "North District", alerts[0].ZoneName)
	assert.Nil(t, alerts[0].EndedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEndAlert_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	mock.ExpectExec("UPDATE active_alerts SET").
		WithArgs(int64(9), testTime).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.EndAlert(context.Background(), 9, testTime)

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestCreateAllocations_AssignsIDs(t *testing.T) {
	// Подготовка
	repo, mock := newMockRepository(t, nil)
	allocations := []*models.Allocation{
		{UserID: 1, ShelterID: 10, AlertID: 3, AllocatedAt: testTime, Status: models.StatusEnRoute, DistanceKm: 0.2},
		{UserID: 2, ShelterID: 10, AlertID: 3, AllocatedAt: testTime, Status: models.StatusEnRoute, DistanceKm: 0.3},
	}

	// Ожидания
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO allocations").
		WithArgs(int64(1), int64(10), int64(3), testTime, "EN_ROUTE", 0.2).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectQuery("INSERT INTO allocations").
		WithArgs(int64(2), int64(10), int64(3), testTime, "EN_ROUTE", 0.3).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(101)))
	mock.ExpectCommit()

	// Действие
	err := repo.CreateAllocations(context.Background(), allocations)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(100), allocations[0].ID)
	assert.Equal(t, int64(101), allocations[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAllocations_OpenAllocationConflict(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO allocations").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectRollback()

	err := repo.CreateAllocations(context.Background(), []*models.Allocation{{UserID: 1, AlertID: 3}})

	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveAllocation(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	arrived := testTime.Add(5 * time.Minute)

	mock.ExpectQuery("FROM allocations").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(allocationCols).
			AddRow(int64(100), int64(1), int64(10), int64(3), testTime, &arrived, "ARRIVED", 0.2))

	alloc, err := repo.GetActiveAllocation(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, models.StatusArrived, alloc.Status)
	require.NotNil(t, alloc.ArrivedAt)
	assert.Equal(t, arrived, *alloc.ArrivedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveAllocation_None(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	mock.ExpectQuery("FROM allocations").
		WithArgs(int64(1)).
		WillReturnError(pgx.ErrNoRows)

	alloc, err := repo.GetActiveAllocation(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, alloc)
}

func TestUpdateAllocationStatus_KeepsArrivalWhenNil(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	mock.ExpectExec("UPDATE allocations SET").
		WithArgs(int64(100), "LEFT_SHELTER", (*time.Time)(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateAllocationStatus(context.Background(), 100, models.StatusLeftShelter, nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertSweepQueries(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	ctx := context.Background()

	mock.ExpectExec("UPDATE allocations SET").
		WithArgs(int64(3), []int64{10, 11, 12, 13}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 4))
	mock.ExpectExec("UPDATE tracking_sessions SET").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 4))
	mock.ExpectExec("DELETE FROM allocations").
		WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	completed, err := repo.CompleteAllocations(ctx, 3, []int64{10, 11, 12, 13})
	require.NoError(t, err)
	require.NoError(t, repo.DeactivateSessionsByAlert(ctx, 3))
	purged, err := repo.PurgeStaleAllocations(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(4), completed)
	assert.Equal(t, int64(1), purged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteAllocations_EmptySkipsQuery(t *testing.T) {
	repo, mock := newMockRepository(t, nil)

	completed, err := repo.CompleteAllocations(context.Background(), 3, nil)

	require.NoError(t, err)
	assert.Zero(t, completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRoundTrip(t *testing.T) {
	// Подготовка
	repo, mock := newMockRepository(t, nil)
	session := &models.TrackingSession{
		UserID:       1,
		AllocationID: 100,
		ShelterID:    10,
		AlertID:      3,
		LastLocation: models.Coordinate{Latitude: 32.0, Longitude: 34.8},
		LastUpdateAt: testTime,
		Status:       models.StatusEnRoute,
		Route:        &models.RouteSummary{DistanceKm: 0.3, DurationSeconds: 240},
		Active:       true,
	}
	route := []byte(`{"distance_km":0.3,"duration_seconds":240}`)

	// Ожидания
	mock.ExpectExec("INSERT INTO tracking_sessions").
		WithArgs(int64(1), int64(100), int64(10), int64(3), 32.0, 34.8, testTime, "EN_ROUTE", route, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("FROM tracking_sessions").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{
			"user_id", "allocation_id", "shelter_id", "alert_id", "last_lat", "last_lon",
			"last_update_at", "status", "route", "active",
		}).AddRow(int64(1), int64(100), int64(10), int64(3), 32.0, 34.8, testTime, "EN_ROUTE", route, true))

	// Действие
	require.NoError(t, repo.SaveSession(context.Background(), session))
	got, err := repo.GetSession(context.Background(), 1)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession_None(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	mock.ExpectQuery("FROM tracking_sessions").
		WithArgs(int64(1)).
		WillReturnError(pgx.ErrNoRows)

	session, err := repo.GetSession(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSaveLocationCheck(t *testing.T) {
	repo, mock := newMockRepository(t, nil)
	userID := int64(1)
	check := &models.LocationCheck{UserID: &userID, Latitude: 32.0, Longitude: 34.8, ZoneName: "North District", HasActiveAlert: true}

	mock.ExpectQuery("INSERT INTO location_checks").
		WithArgs(&userID, 34.8, 32.0, "North District", true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "checked_at"}).AddRow(int64(77), testTime))

	require.NoError(t, repo.SaveLocationCheck(context.Background(), check))
	assert.Equal(t, int64(77), check.ID)
	assert.Equal(t, testTime, check.CheckedAt)
}
