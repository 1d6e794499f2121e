package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// duplicateShelterMeters - радиус, в котором убежище того же поставщика считается дублем
const duplicateShelterMeters = 11

const shelterColumns = `
	id,
	name,
	address,
	provider_id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	capacity,
	occupancy,
	active,
	created_at,
	updated_at`

func scanShelter(row rowScanner) (*models.Shelter, error) {
	s := &models.Shelter{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.ProviderID,
		&s.Location.Latitude,
		&s.Location.Longitude,
		&s.Capacity,
		&s.Occupancy,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// CreateShelter сохраняет убежище. Убежище того же поставщика рядом с существующим
// считается дублем и дает ошибку Conflict.
func (r *Repository) CreateShelter(ctx context.Context, shelter *models.Shelter) error {
	var exists bool
	dupQuery := `
		SELECT EXISTS (
			SELECT 1 FROM shelters
			WHERE provider_id = $1
				AND ST_DWithin(location, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4)
		);
	`
	err := r.db.QueryRow(ctx, dupQuery,
		shelter.ProviderID,
		shelter.Location.Longitude,
		shelter.Location.Latitude,
		float64(duplicateShelterMeters),
	).Scan(&exists)
	if err != nil {
		return apperr.Persistence(err, "failed to check shelter duplicates")
	}
	if exists {
		return apperr.Conflict(fmt.Sprintf("shelter %q already registered at this location", shelter.ProviderID))
	}

	query := `
		INSERT INTO shelters (name, address, provider_id, location, capacity, occupancy, active)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($4, $5), 4326), $6, $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		shelter.Name,
		shelter.Address,
		shelter.ProviderID,
		shelter.Location.Longitude,
		shelter.Location.Latitude,
		shelter.Capacity,
		shelter.Occupancy,
		shelter.Active,
	).Scan(&shelter.ID, &shelter.CreatedAt, &shelter.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict(fmt.Sprintf("shelter %q already exists", shelter.ProviderID))
		}
		return apperr.Persistence(err, "failed to create shelter")
	}
	return nil
}

// GetShelter возвращает убежище по идентификатору
func (r *Repository) GetShelter(ctx context.Context, id int64) (*models.Shelter, error) {
	query := `SELECT ` + shelterColumns + `
		FROM shelters
		WHERE id = $1;
	`
	s, err := scanShelter(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "shelter", id)
	}
	return s, nil
}

// ListActiveShelters возвращает все действующие убежища
func (r *Repository) ListActiveShelters(ctx context.Context) ([]*models.Shelter, error) {
	query := `SELECT ` + shelterColumns + `
		FROM shelters
		WHERE active = TRUE
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to list active shelters")
	}
	return collect(rows, scanShelter, "shelter")
}

// ListSheltersWithin возвращает действующие убежища в радиусе от точки
func (r *Repository) ListSheltersWithin(ctx context.Context, lat, lon, radiusKm float64) ([]*models.Shelter, error) {
	query := `SELECT ` + shelterColumns + `
		FROM shelters
		WHERE
			active = TRUE
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				$3
			)
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, lon, lat, radiusKm*1000)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to list shelters within radius")
	}
	return collect(rows, scanShelter, "shelter")
}

// ApplyOccupancyDeltas применяет изменения занятости одной транзакцией.
// Увеличение, превышающее вместимость, отменяет всю транзакцию.
func (r *Repository) ApplyOccupancyDeltas(ctx context.Context, deltas map[int64]int) error {
	if len(deltas) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(deltas))
	for id, d := range deltas {
		if d != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	// Фиксированный порядок строк исключает взаимные блокировки параллельных транзакций
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin occupancy transaction: %w", err)
	}
	defer rollback(ctx, tx)

	query := `
		UPDATE shelters SET
			occupancy = GREATEST(occupancy + $1, 0),
			updated_at = NOW()
		WHERE id = $2 AND occupancy + $1 <= capacity;
	`
	for _, id := range ids {
		cmdTag, err := tx.Exec(ctx, query, deltas[id], id)
		if err != nil {
			return fmt.Errorf("failed to update occupancy of shelter %d: %w", id, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("shelter %d not found or capacity exceeded", id)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit occupancy transaction: %w", err)
	}
	return nil
}
