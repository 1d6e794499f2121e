package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

const allocationColumns = `
	id,
	user_id,
	shelter_id,
	alert_id,
	allocated_at,
	arrived_at,
	status,
	distance_km`

func scanAllocation(row rowScanner) (*models.Allocation, error) {
	a := &models.Allocation{}
	var status string
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ShelterID,
		&a.AlertID,
		&a.AllocatedAt,
		&a.ArrivedAt,
		&status,
		&a.DistanceKm,
	)
	a.Status = models.AllocationStatus(status)
	return a, err
}

// CreateAllocations сохраняет назначения одной транзакцией и проставляет им идентификаторы
func (r *Repository) CreateAllocations(ctx context.Context, allocations []*models.Allocation) error {
	if len(allocations) == 0 {
		return nil
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperr.Persistence(err, "failed to begin allocation transaction")
	}
	defer rollback(ctx, tx)

	query := `
		INSERT INTO allocations (user_id, shelter_id, alert_id, allocated_at, status, distance_km)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	for _, a := range allocations {
		err := tx.QueryRow(ctx, query,
			a.UserID,
			a.ShelterID,
			a.AlertID,
			a.AllocatedAt,
			string(a.Status),
			a.DistanceKm,
		).Scan(&a.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return apperr.Conflict(fmt.Sprintf("user %d already has an active allocation for alert %d", a.UserID, a.AlertID))
			}
			return apperr.Persistence(err, "failed to create allocation")
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return apperr.Persistence(err, "failed to commit allocation transaction")
	}
	return nil
}

// GetActiveAllocation возвращает последнее незавершенное назначение пользователя или nil
func (r *Repository) GetActiveAllocation(ctx context.Context, userID int64) (*models.Allocation, error) {
	query := `SELECT ` + allocationColumns + `
		FROM allocations
		WHERE user_id = $1 AND status <> 'COMPLETED'
		ORDER BY allocated_at DESC, id DESC
		LIMIT 1;
	`
	a, err := scanAllocation(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Persistence(err, "failed to get active allocation")
	}
	return a, nil
}

// ListActiveAllocationsByAlert возвращает незавершенные назначения тревоги
func (r *Repository) ListActiveAllocationsByAlert(ctx context.Context, alertID int64) ([]*models.Allocation, error) {
	query := `SELECT ` + allocationColumns + `
		FROM allocations
		WHERE alert_id = $1 AND status <> 'COMPLETED'
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, alertID)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to list allocations by alert")
	}
	return collect(rows, scanAllocation, "allocation")
}

// UpdateAllocationStatus меняет статус; время прибытия перезаписывается только если передано
func (r *Repository) UpdateAllocationStatus(ctx context.Context, id int64, status models.AllocationStatus, arrivedAt *time.Time) error {
	query := `
		UPDATE allocations SET
			status = $2,
			arrived_at = COALESCE($3, arrived_at)
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, string(status), arrivedAt)
	if err != nil {
		return apperr.Persistence(err, "failed to update allocation status")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Sprintf("allocation with id %d not found for update", id))
	}
	return nil
}

// CompleteAllocations завершает перечисленные незавершенные назначения тревоги
func (r *Repository) CompleteAllocations(ctx context.Context, alertID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `
		UPDATE allocations SET
			status = 'COMPLETED'
		WHERE alert_id = $1 AND id = ANY($2) AND status <> 'COMPLETED';
	`
	cmdTag, err := r.db.Exec(ctx, query, alertID, ids)
	if err != nil {
		return 0, apperr.Persistence(err, "failed to complete allocations")
	}
	return cmdTag.RowsAffected(), nil
}

// PurgeStaleAllocations удаляет устаревшие назначения тревоги,
// оставляя для каждого пользователя только последнее
func (r *Repository) PurgeStaleAllocations(ctx context.Context, alertID int64) (int64, error) {
	query := `
		DELETE FROM allocations a
		USING allocations b
		WHERE a.alert_id = $1
			AND b.alert_id = a.alert_id
			AND b.user_id = a.user_id
			AND a.id < b.id;
	`
	cmdTag, err := r.db.Exec(ctx, query, alertID)
	if err != nil {
		return 0, apperr.Persistence(err, "failed to purge stale allocations")
	}
	return cmdTag.RowsAffected(), nil
}
