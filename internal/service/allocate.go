package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/allocation"
	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/ledger"
	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/shenikar/shelter_dispatch_system/internal/notify"
	"github.com/shenikar/shelter_dispatch_system/internal/routecache"
	"github.com/sirupsen/logrus"
)

// RunAllocation выполняет прогон по переданным убежищам без изменения учета занятости
func (s *shelterService) RunAllocation(ctx context.Context, req AllocationRequest) (*AllocationOutcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "RunAllocation",
		"people":  len(req.People),
	})
	if len(req.People) == 0 {
		return nil, apperr.Validation("people list is empty")
	}

	shelters := req.Shelters
	if len(shelters) == 0 {
		var err error
		shelters, err = s.repo.ListActiveShelters(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to list active shelters")
			return nil, fmt.Errorf("service: could not list shelters: %w", err)
		}
	}

	settings := s.settings(req.Settings)
	start := s.now()
	engine := allocation.NewEngine(settings).WithDistance(s.distanceFunc(ctx, req.People, shelters, settings))
	result := engine.Run(req.People, shelters, req.Families, allocation.NewMemoryCapacity(shelters))
	observeRun("preview", result, s.now().Sub(start))

	stats := allocation.ComputeStatistics(req.People, shelters, result)
	log.WithField("assigned", stats.AssignedCount).Info("Allocation preview finished")
	return &AllocationOutcome{Result: result, Statistics: stats}, nil
}

// AllocateAlert распределяет людей в рамках тревоги с резервированием мест
func (s *shelterService) AllocateAlert(ctx context.Context, alertID int64, req AllocationRequest) (*AllocationOutcome, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "shelter",
		"method":   "AllocateAlert",
		"alert_id": alertID,
	})
	if len(req.People) == 0 {
		return nil, apperr.Validation("people list is empty")
	}

	alert, err := s.repo.GetAlert(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	if !alert.Active {
		return nil, apperr.Conflict(fmt.Sprintf("alert %d is not active", alertID))
	}

	// Не больше одного незавершенного назначения на пользователя в рамках тревоги
	existing, err := s.repo.ListActiveAllocationsByAlert(ctx, alertID)
	if err != nil {
		log.WithError(err).Error("Failed to list active allocations")
		return nil, fmt.Errorf("service: could not list allocations: %w", err)
	}
	// Уже размещенные члены семей удерживают остальных в своем убежище
	placed := make(map[int64]int64, len(existing))
	for _, a := range existing {
		placed[a.UserID] = a.ShelterID
	}
	people := make([]models.Person, 0, len(req.People))
	for _, p := range req.People {
		if _, ok := placed[p.ID]; !ok {
			people = append(people, p)
		}
	}

	shelters, err := s.repo.ListActiveShelters(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active shelters")
		return nil, fmt.Errorf("service: could not list shelters: %w", err)
	}

	result, allocations, err := s.commit(ctx, log, alert, people, shelters, req.Families, placed, s.settings(req.Settings), "alert")
	if err != nil {
		return nil, err
	}

	locations := make(map[int64]models.Coordinate, len(people))
	for _, p := range people {
		locations[p.ID] = p.Location
	}
	for _, a := range allocations {
		session := &models.TrackingSession{
			UserID:       a.UserID,
			AllocationID: a.ID,
			ShelterID:    a.ShelterID,
			AlertID:      alertID,
			LastLocation: locations[a.UserID],
			LastUpdateAt: a.AllocatedAt,
			Status:       models.StatusEnRoute,
			Active:       true,
		}
		if err := s.repo.SaveSession(ctx, session); err != nil {
			log.WithError(err).WithField("user_id", a.UserID).Warn("Failed to save tracking session")
		}
		s.publish(ctx, log, notify.NewEvent(notify.EventShelterAssigned, a.UserID, a.ShelterID, alertID, string(a.Status)))
	}

	stats := allocation.ComputeStatistics(people, shelters, result)
	log.WithFields(logrus.Fields{
		"assigned":   stats.AssignedCount,
		"unassigned": stats.UnassignedCount,
		"skipped":    len(req.People) - len(people),
	}).Info("Alert allocation finished")
	return &AllocationOutcome{Result: result, Statistics: stats}, nil
}

// commit прогоняет распределение под блокировкой учета и сохраняет назначения.
// Если назначения не удалось сохранить, зарезервированные места освобождаются.
func (s *shelterService) commit(ctx context.Context, log *logrus.Entry, alert *models.ActiveAlert, people []models.Person,
	shelters []*models.Shelter, families []models.Family, placed map[int64]int64, settings allocation.Settings,
	mode string) (allocation.Result, []*models.Allocation, error) {
	active := make([]*models.Shelter, 0, len(shelters))
	for _, sh := range shelters {
		if sh.Active {
			active = append(active, sh)
		}
	}
	s.ledger.Ensure(active)

	// Расстояния запрашиваются до захвата блокировки учета
	engine := allocation.NewEngine(settings).
		WithDistance(s.distanceFunc(ctx, people, active, settings)).
		WithPlaced(placed)

	start := s.now()
	var result allocation.Result
	err := s.ledger.Run(ctx, func(tx *ledger.Tx) error {
		result = engine.Run(people, active, families, tx)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to commit occupancy reservations")
		return result, nil, fmt.Errorf("service: could not reserve shelter capacity: %w", err)
	}
	observeRun(mode, result, s.now().Sub(start))

	now := s.now().UTC()
	allocations := make([]*models.Allocation, 0, len(result.Assignments))
	for _, p := range people {
		a, ok := result.Assignments[p.ID]
		if !ok {
			continue
		}
		allocations = append(allocations, &models.Allocation{
			UserID:      p.ID,
			ShelterID:   a.ShelterID,
			AlertID:     alert.ID,
			AllocatedAt: now,
			Status:      models.StatusEnRoute,
			DistanceKm:  a.DistanceKm,
		})
	}
	if len(allocations) == 0 {
		return result, nil, nil
	}

	if err := s.repo.CreateAllocations(ctx, allocations); err != nil {
		log.WithError(err).Error("Failed to save allocations, releasing reservations")
		s.rollback(ctx, log, allocations)
		return result, nil, fmt.Errorf("service: could not save allocations: %w", err)
	}
	return result, allocations, nil
}

func (s *shelterService) rollback(ctx context.Context, log *logrus.Entry, allocations []*models.Allocation) {
	counts := make(map[int64]int)
	for _, a := range allocations {
		counts[a.ShelterID]++
	}
	for id, n := range counts {
		if err := s.ledger.Release(ctx, id, n); err != nil {
			log.WithError(err).WithField("shelter_id", id).Error("Failed to release reservation")
		}
	}
}

type pairKey struct {
	person  int64
	shelter int64
}

// distanceFunc по умолчанию возвращает расстояние по прямой. С ALLOCATION_ROUTED_DISTANCE
// запрашивает пешие расстояния для пар в пределах допустимой дистанции;
// пешее расстояние не бывает меньше расстояния по прямой.
func (s *shelterService) distanceFunc(ctx context.Context, people []models.Person, shelters []*models.Shelter,
	settings allocation.Settings) allocation.DistanceFunc {
	if !s.cfg.RoutedAllocation || s.routes == nil {
		return allocation.HaversineDistance
	}
	maxKm := settings.MaxDistanceKm()

	var (
		pairs []routecache.Pair
		keys  []pairKey
	)
	for _, p := range people {
		for _, sh := range shelters {
			if allocation.HaversineDistance(p, sh) > maxKm {
				continue
			}
			pairs = append(pairs, routecache.Pair{Origin: point(p.Location), Destination: point(sh.Location)})
			keys = append(keys, pairKey{person: p.ID, shelter: sh.ID})
		}
	}

	routed := make(map[pairKey]float64, len(pairs))
	if len(pairs) > 0 {
		for i, r := range s.routes.Distances(ctx, pairs) {
			routed[keys[i]] = r.DistanceKm
		}
	}

	return func(p models.Person, sh *models.Shelter) float64 {
		straight := allocation.HaversineDistance(p, sh)
		if d, ok := routed[pairKey{person: p.ID, shelter: sh.ID}]; ok {
			return math.Max(d, straight)
		}
		return straight
	}
}

func observeRun(mode string, result allocation.Result, elapsed time.Duration) {
	metrics.AllocationRunsTotal.WithLabelValues(mode).Inc()
	metrics.PeopleAssignedTotal.Add(float64(len(result.Assignments)))
	metrics.PeopleUnassignedTotal.Add(float64(len(result.Unassigned)))
	metrics.AllocationDurationMs.Observe(float64(elapsed.Milliseconds()))
}
