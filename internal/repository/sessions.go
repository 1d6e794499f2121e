package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// SaveSession создает или обновляет сессию отслеживания пользователя
func (r *Repository) SaveSession(ctx context.Context, session *models.TrackingSession) error {
	var route []byte
	if session.Route != nil {
		var err error
		if route, err = json.Marshal(session.Route); err != nil {
			return apperr.Persistence(err, "failed to marshal session route")
		}
	}
	query := `
		INSERT INTO tracking_sessions
			(user_id, allocation_id, shelter_id, alert_id, last_lat, last_lon, last_update_at, status, route, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			allocation_id = EXCLUDED.allocation_id,
			shelter_id = EXCLUDED.shelter_id,
			alert_id = EXCLUDED.alert_id,
			last_lat = EXCLUDED.last_lat,
			last_lon = EXCLUDED.last_lon,
			last_update_at = EXCLUDED.last_update_at,
			status = EXCLUDED.status,
			route = EXCLUDED.route,
			active = EXCLUDED.active;
	`
	_, err := r.db.Exec(ctx, query,
		session.UserID,
		session.AllocationID,
		session.ShelterID,
		session.AlertID,
		session.LastLocation.Latitude,
		session.LastLocation.Longitude,
		session.LastUpdateAt,
		string(session.Status),
		route,
		session.Active,
	)
	if err != nil {
		return apperr.Persistence(err, "failed to save tracking session")
	}
	return nil
}

// GetSession возвращает сессию пользователя или nil, если ее нет
func (r *Repository) GetSession(ctx context.Context, userID int64) (*models.TrackingSession, error) {
	query := `
		SELECT user_id, allocation_id, shelter_id, alert_id, last_lat, last_lon, last_update_at, status, route, active
		FROM tracking_sessions
		WHERE user_id = $1;
	`
	s := &models.TrackingSession{}
	var (
		status string
		route  []byte
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&s.UserID,
		&s.AllocationID,
		&s.ShelterID,
		&s.AlertID,
		&s.LastLocation.Latitude,
		&s.LastLocation.Longitude,
		&s.LastUpdateAt,
		&status,
		&route,
		&s.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperr.Persistence(err, "failed to get tracking session")
	}
	s.Status = models.AllocationStatus(status)
	if len(route) > 0 {
		s.Route = &models.RouteSummary{}
		if err := json.Unmarshal(route, s.Route); err != nil {
			return nil, apperr.Persistence(err, "failed to unmarshal session route")
		}
	}
	return s, nil
}

// DeactivateSessionsByAlert останавливает отслеживание всех сессий тревоги
func (r *Repository) DeactivateSessionsByAlert(ctx context.Context, alertID int64) error {
	query := `
		UPDATE tracking_sessions SET
			active = FALSE,
			status = 'COMPLETED'
		WHERE alert_id = $1 AND active = TRUE;
	`
	if _, err := r.db.Exec(ctx, query, alertID); err != nil {
		return apperr.Persistence(err, "failed to deactivate tracking sessions")
	}
	return nil
}
