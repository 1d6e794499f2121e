package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// SaveLocationCheck сохраняет запись о проверке местоположения в бд
func (r *Repository) SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error {
	query := `
		INSERT INTO location_checks (user_id, location, zone_name, has_active_alert)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5)
		RETURNING id, checked_at;
	`
	err := r.db.QueryRow(ctx, query,
		check.UserID,
		check.Longitude,
		check.Latitude,
		check.ZoneName,
		check.HasActiveAlert,
	).Scan(&check.ID, &check.CheckedAt)
	if err != nil {
		return fmt.Errorf("failed to save location check: %w", err)
	}
	return nil
}
