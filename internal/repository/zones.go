package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"

	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// encodePolygon кодирует кольцо вершин в EWKB с SRID 4326
func encodePolygon(polygon []models.Coordinate) ([]byte, error) {
	g, err := geo.ToGeom(polygon)
	if err != nil {
		return nil, err
	}
	data, err := ewkb.Marshal(g, ewkb.NDR)
	if err != nil {
		return nil, eris.Wrap(err, "marshal zone polygon")
	}
	return data, nil
}

func decodePolygon(data []byte) ([]models.Coordinate, error) {
	g, err := ewkb.Unmarshal(data)
	if err != nil {
		return nil, eris.Wrap(err, "unmarshal zone polygon")
	}
	p, ok := g.(*geom.Polygon)
	if !ok {
		return nil, eris.Errorf("zone geometry is %T, want polygon", g)
	}
	return geo.FromGeom(p), nil
}

func scanZone(row rowScanner) (*models.AlertZone, error) {
	z := &models.AlertZone{}
	var polygon []byte
	if err := row.Scan(&z.ID, &z.Name, &polygon, &z.ResponseBudgetSeconds, &z.CreatedAt); err != nil {
		return nil, err
	}
	coords, err := decodePolygon(polygon)
	if err != nil {
		return nil, err
	}
	z.Polygon = coords
	return z, nil
}

// CreateZone сохраняет зону и сбрасывает кэш списка зон
func (r *Repository) CreateZone(ctx context.Context, zone *models.AlertZone) error {
	polygon, err := encodePolygon(zone.Polygon)
	if err != nil {
		return apperr.Validation(fmt.Sprintf("invalid zone polygon: %v", err))
	}
	query := `
		INSERT INTO alert_zones (name, polygon, response_budget_seconds)
		VALUES ($1, ST_GeomFromEWKB($2), $3)
		RETURNING id, created_at;
	`
	err = r.db.QueryRow(ctx, query, zone.Name, polygon, zone.ResponseBudgetSeconds).Scan(&zone.ID, &zone.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict(fmt.Sprintf("zone %q already exists", zone.Name))
		}
		return apperr.Persistence(err, "failed to create zone")
	}

	if r.zones != nil {
		if err := r.zones.Invalidate(ctx); err != nil {
			metrics.ZoneCacheTotal.WithLabelValues("error").Inc()
		}
	}
	return nil
}

// GetZone возвращает зону по идентификатору
func (r *Repository) GetZone(ctx context.Context, id int64) (*models.AlertZone, error) {
	query := `
		SELECT id, name, ST_AsEWKB(polygon), response_budget_seconds, created_at
		FROM alert_zones
		WHERE id = $1;
	`
	z, err := scanZone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "zone", id)
	}
	return z, nil
}

// ListZones возвращает все зоны; список кэшируется в Redis.
// Ошибки кэша не мешают чтению из базы.
func (r *Repository) ListZones(ctx context.Context) ([]*models.AlertZone, error) {
	if r.zones != nil {
		cached, err := r.zones.Get(ctx)
		switch {
		case err != nil:
			metrics.ZoneCacheTotal.WithLabelValues("error").Inc()
		case cached != nil:
			metrics.ZoneCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.ZoneCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	query := `
		SELECT id, name, ST_AsEWKB(polygon), response_budget_seconds, created_at
		FROM alert_zones
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to list zones")
	}
	zones, err := collect(rows, scanZone, "zone")
	if err != nil {
		return nil, err
	}

	if r.zones != nil {
		if err := r.zones.Set(ctx, zones); err != nil {
			metrics.ZoneCacheTotal.WithLabelValues("error").Inc()
		}
	}
	return zones, nil
}

const alertColumns = `
	a.id,
	a.zone_id,
	z.name,
	a.started_at,
	ST_Y(a.center::geometry) AS latitude,
	ST_X(a.center::geometry) AS longitude,
	a.active,
	a.ended_at`

func scanAlert(row rowScanner) (*models.ActiveAlert, error) {
	a := &models.ActiveAlert{}
	err := row.Scan(
		&a.ID,
		&a.ZoneID,
		&a.ZoneName,
		&a.StartedAt,
		&a.Center.Latitude,
		&a.Center.Longitude,
		&a.Active,
		&a.EndedAt,
	)
	return a, err
}

// StartAlert сохраняет тревогу; вторая активная тревога в зоне дает Conflict
func (r *Repository) StartAlert(ctx context.Context, alert *models.ActiveAlert) error {
	query := `
		INSERT INTO active_alerts (zone_id, started_at, center, active)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		alert.ZoneID,
		alert.StartedAt,
		alert.Center.Longitude,
		alert.Center.Latitude,
		alert.Active,
	).Scan(&alert.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict(fmt.Sprintf("zone %d already has an active alert", alert.ZoneID))
		}
		return apperr.Persistence(err, "failed to start alert")
	}
	return nil
}

// GetAlert возвращает тревогу по идентификатору, в том числе завершенную
func (r *Repository) GetAlert(ctx context.Context, id int64) (*models.ActiveAlert, error) {
	query := `SELECT ` + alertColumns + `
		FROM active_alerts a
		JOIN alert_zones z ON z.id = a.zone_id
		WHERE a.id = $1;
	`
	a, err := scanAlert(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "alert", id)
	}
	return a, nil
}

// ListActiveAlerts возвращает незавершенные тревоги
func (r *Repository) ListActiveAlerts(ctx context.Context) ([]*models.ActiveAlert, error) {
	query := `SELECT ` + alertColumns + `
		FROM active_alerts a
		JOIN alert_zones z ON z.id = a.zone_id
		WHERE a.active = TRUE
		ORDER BY a.started_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to list active alerts")
	}
	return collect(rows, scanAlert, "alert")
}

// EndAlert завершает тревогу
func (r *Repository) EndAlert(ctx context.Context, id int64, endedAt time.Time) error {
	query := `
		UPDATE active_alerts SET
			active = FALSE,
			ended_at = $2
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, endedAt)
	if err != nil {
		return apperr.Persistence(err, "failed to end alert")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperr.NotFound(fmt.Sprintf("alert with id %d not found for end", id))
	}
	return nil
}
