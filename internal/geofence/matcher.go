// Package geofence сопоставляет координаты с зонами оповещения и активными тревогами.
package geofence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

const (
	msgNotInZone     = "You are not in an alert zone"
	msgNoActiveAlert = "You are in an alert zone, no active alert"
	msgTimeRemaining = "Active alert in your area. You have %d seconds to reach a shelter"
	msgTimeExhausted = "Active alert in your area. Response time has passed, move to the nearest protected space immediately"
)

// ZoneSource предоставляет зоны и активные тревоги
type ZoneSource interface {
	ListZones(ctx context.Context) ([]*models.AlertZone, error)
	ListActiveAlerts(ctx context.Context) ([]*models.ActiveAlert, error)
}

// LocationStatus - результат проверки координаты
type LocationStatus struct {
	IsInZone              bool                `json:"is_in_zone"`
	ZoneName              string              `json:"zone_name,omitempty"`
	HasActiveAlert        bool                `json:"has_active_alert"`
	Message               string              `json:"message"`
	ResponseTimeRemaining *int                `json:"response_time_remaining,omitempty"`
	Timestamp             time.Time           `json:"timestamp"`
	Zone                  *models.AlertZone   `json:"-"`
	Alert                 *models.ActiveAlert `json:"-"`
}

type Matcher struct {
	source ZoneSource
	now    func() time.Time
}

func NewMatcher(source ZoneSource) *Matcher {
	return &Matcher{source: source, now: time.Now}
}

// WithClock подменяет источник времени
func (m *Matcher) WithClock(now func() time.Time) *Matcher {
	m.now = now
	return m
}

// FindZone возвращает первую зону, содержащую точку
func FindZone(zones []*models.AlertZone, lat, lon float64) *models.AlertZone {
	for _, z := range zones {
		if z != nil && geo.ContainsPoint(z.Polygon, lat, lon) {
			return z
		}
	}
	return nil
}

// NormalizeName приводит имя зоны к виду для сравнения: без пробелов, дефисов и регистра
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer(" ", "", "-", "").Replace(name)
	return strings.ToLower(name)
}

// FindAlert ищет активную тревогу для зоны по нормализованному имени
func FindAlert(alerts []*models.ActiveAlert, zone *models.AlertZone) *models.ActiveAlert {
	if zone == nil {
		return nil
	}
	want := NormalizeName(zone.Name)
	for _, a := range alerts {
		if a != nil && a.Active && NormalizeName(a.ZoneName) == want {
			return a
		}
	}
	return nil
}

// CheckLocation определяет зону точки и наличие активной тревоги
func (m *Matcher) CheckLocation(ctx context.Context, lat, lon float64) (*LocationStatus, error) {
	now := m.now()
	status := &LocationStatus{Timestamp: now, Message: msgNotInZone}

	zones, err := m.source.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("geofence: failed to list zones: %w", err)
	}

	zone := FindZone(zones, lat, lon)
	if zone == nil {
		return status, nil
	}
	status.IsInZone = true
	status.ZoneName = zone.Name
	status.Zone = zone
	status.Message = msgNoActiveAlert

	alerts, err := m.source.ListActiveAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("geofence: failed to list active alerts: %w", err)
	}

	alert := FindAlert(alerts, zone)
	if alert == nil {
		return status, nil
	}
	status.HasActiveAlert = true
	status.Alert = alert

	remaining := RemainingSeconds(zone, alert, now)
	status.ResponseTimeRemaining = &remaining
	if remaining > 0 {
		status.Message = fmt.Sprintf(msgTimeRemaining, remaining)
	} else {
		status.Message = msgTimeExhausted
	}
	return status, nil
}

// RemainingSeconds возвращает остаток бюджета реагирования зоны
func RemainingSeconds(zone *models.AlertZone, alert *models.ActiveAlert, now time.Time) int {
	elapsed := int(now.Sub(alert.StartedAt).Seconds())
	return zone.ResponseBudgetSeconds - elapsed
}
