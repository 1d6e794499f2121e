// Package tracking реализует автомат состояний пути пользователя к убежищу.
//
// Автомат не хранит состояния и не обращается к внешним системам: расстояние до
// убежища вычисляет вызывающий код, а автомат только принимает решение о переходе.
package tracking

import (
	"math"
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

const (
	DefaultArrivalKm   = 0.01
	DefaultLeaveKm     = 0.05
	DefaultDeviationKm = 0.1
)

// SignalRouteUpdated - кратковременный сигнал об отклонении от маршрута; статус при этом не меняется
const SignalRouteUpdated = "ROUTE_UPDATED"

// Thresholds - пороги переходов в километрах
type Thresholds struct {
	ArrivalKm   float64
	LeaveKm     float64
	DeviationKm float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		ArrivalKm:   DefaultArrivalKm,
		LeaveKm:     DefaultLeaveKm,
		DeviationKm: DefaultDeviationKm,
	}
}

// Update - очередное местоположение пользователя
type Update struct {
	Location    models.Coordinate
	DistanceKm  float64
	AlertActive bool
	At          time.Time
}

// Transition - результат обработки обновления
type Transition struct {
	From models.AllocationStatus
	To   models.AllocationStatus
	// RouteDeviated - пользователь отклонился от маршрута, нужен пересчет; статус не меняется
	RouteDeviated bool
	// DeviationKm - расстояние до линии маршрута, если маршрут известен
	DeviationKm float64
}

// Changed сообщает, что статус изменился
func (t Transition) Changed() bool {
	return t.From != t.To
}

type Machine struct {
	thresholds Thresholds
}

func NewMachine(t Thresholds) *Machine {
	d := DefaultThresholds()
	if t.ArrivalKm <= 0 {
		t.ArrivalKm = d.ArrivalKm
	}
	if t.LeaveKm <= 0 {
		t.LeaveKm = d.LeaveKm
	}
	if t.DeviationKm <= 0 {
		t.DeviationKm = d.DeviationKm
	}
	return &Machine{thresholds: t}
}

func (m *Machine) Thresholds() Thresholds {
	return m.thresholds
}

// Evaluate вычисляет переход без изменения сессии
func (m *Machine) Evaluate(session *models.TrackingSession, u Update) Transition {
	tr := Transition{From: session.Status, To: session.Status}
	if session.Status.IsTerminal() {
		return tr
	}
	if !u.AlertActive {
		tr.To = models.StatusCompleted
		return tr
	}

	switch session.Status {
	case models.StatusEnRoute:
		if u.DistanceKm < m.thresholds.ArrivalKm {
			tr.To = models.StatusArrived
			return tr
		}
		if session.Route != nil && len(session.Route.Points) > 1 {
			tr.DeviationKm = geo.DistanceToPathKm(u.Location, session.Route.Points)
			tr.RouteDeviated = tr.DeviationKm > m.thresholds.DeviationKm
		}
	case models.StatusArrived:
		if u.DistanceKm > m.thresholds.LeaveKm {
			tr.To = models.StatusLeftShelter
		}
	case models.StatusLeftShelter:
		if u.DistanceKm < m.thresholds.ArrivalKm {
			tr.To = models.StatusArrived
		}
	}
	return tr
}

// Step применяет обновление к сессии и возвращает переход
func (m *Machine) Step(session *models.TrackingSession, u Update) Transition {
	tr := m.Evaluate(session, u)
	if session.Status.IsTerminal() {
		return tr
	}
	session.LastLocation = u.Location
	session.LastUpdateAt = u.At
	session.Status = tr.To
	if tr.To.IsTerminal() {
		session.Active = false
	}
	return tr
}

// Complete завершает сессию по окончании тревоги или явному освобождению
func Complete(session *models.TrackingSession, at time.Time) Transition {
	tr := Transition{From: session.Status, To: models.StatusCompleted}
	session.Status = models.StatusCompleted
	session.Active = false
	session.LastUpdateAt = at
	return tr
}

// EstimateSeconds оценивает время пути пешком
func EstimateSeconds(distanceKm, walkingSpeedKmPerMin float64) int {
	if walkingSpeedKmPerMin <= 0 || distanceKm <= 0 {
		return 0
	}
	return int(math.Round(distanceKm / walkingSpeedKmPerMin * 60))
}
