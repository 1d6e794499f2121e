package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/shenikar/shelter_dispatch_system/internal/notify"
	"github.com/shenikar/shelter_dispatch_system/internal/tracking"
	"github.com/sirupsen/logrus"
)

// UpdateUserLocation обрабатывает очередное местоположение пользователя на пути к убежищу
func (s *shelterService) UpdateUserLocation(ctx context.Context, userID int64, lat, lon float64) (*LocationUpdate, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "UpdateUserLocation",
		"user_id": userID,
	})
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	session, err := s.repo.GetSession(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get tracking session")
		return nil, fmt.Errorf("service: could not get tracking session: %w", err)
	}
	if session == nil || !session.Active {
		if session, err = s.restoreSession(ctx, userID); err != nil {
			log.WithError(err).Warn("No tracking session for user")
			return nil, err
		}
	}

	alert, err := s.repo.GetAlert(ctx, session.AlertID)
	if err != nil {
		log.WithError(err).Error("Failed to get alert of tracking session")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	shelter, err := s.repo.GetShelter(ctx, session.ShelterID)
	if err != nil {
		log.WithError(err).Error("Failed to get assigned shelter")
		return nil, fmt.Errorf("service: could not get assigned shelter: %w", err)
	}

	now := s.now().UTC()
	location := models.Coordinate{Latitude: lat, Longitude: lon}
	straight := geo.Distance(location, shelter.Location)
	tr := s.tracker.Step(session, tracking.Update{
		Location:    location,
		DistanceKm:  straight,
		AlertActive: alert.Active,
		At:          now,
	})

	if tr.Changed() {
		metrics.TrackingTransitionsTotal.WithLabelValues(string(tr.To)).Inc()
		log.WithFields(logrus.Fields{"from": tr.From, "to": tr.To}).Info("Tracking status changed")
		if err := s.applyTransition(ctx, log, session, tr, now); err != nil {
			return nil, err
		}
	}

	update := &LocationUpdate{Status: session.Status}
	if tr.RouteDeviated {
		metrics.TrackingTransitionsTotal.WithLabelValues(tracking.SignalRouteUpdated).Inc()
		log.WithField("deviation_km", tr.DeviationKm).Info("User left the route, recalculating")
		session.Route = s.buildRoute(ctx, location, shelter.Location)
		update.Route = session.Route
		s.publish(ctx, log, notify.NewEvent(notify.EventRouteUpdated, userID, session.ShelterID, session.AlertID, string(session.Status)))
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save tracking session")
		return nil, fmt.Errorf("service: could not save tracking session: %w", err)
	}

	switch session.Status {
	case models.StatusEnRoute:
		remaining := s.remaining(ctx, location, shelter.Location, straight)
		update.DistanceRemaining = remaining.DistanceKm
		update.EstimatedTimeRemaining = remaining.DurationSeconds
		update.RequiresAction = true
		update.ActionType = ActionNavigate
		if tr.RouteDeviated {
			update.ActionType = ActionRouteUpdated
		}
	case models.StatusArrived:
		update.HasArrived = true
	case models.StatusLeftShelter:
		update.DistanceRemaining = straight
		update.EstimatedTimeRemaining = tracking.EstimateSeconds(straight, s.walkingSpeed())
		update.RequiresAction = true
		update.ActionType = ActionReturnToShelter
	}
	return update, nil
}

type remainingDistance struct {
	DistanceKm      float64
	DurationSeconds int
}

// remaining оценивает оставшийся путь через кэш маршрутов или по прямой
func (s *shelterService) remaining(ctx context.Context, from, to models.Coordinate, straight float64) remainingDistance {
	r := remainingDistance{DistanceKm: straight}
	if s.routes != nil {
		d := s.routes.Distance(ctx, point(from), point(to))
		r.DistanceKm, r.DurationSeconds = d.DistanceKm, d.DurationSeconds
	}
	if r.DurationSeconds == 0 {
		r.DurationSeconds = tracking.EstimateSeconds(r.DistanceKm, s.walkingSpeed())
	}
	return r
}

// applyTransition сохраняет смену статуса назначения и рассылает уведомление
func (s *shelterService) applyTransition(ctx context.Context, log *logrus.Entry, session *models.TrackingSession,
	tr tracking.Transition, now time.Time) error {
	var (
		arrivedAt *time.Time
		event     notify.EventType
	)
	switch tr.To {
	case models.StatusArrived:
		arrivedAt = &now
		event = notify.EventArrived
	case models.StatusLeftShelter:
		event = notify.EventLeftShelter
	case models.StatusCompleted:
		if err := s.releaseSeat(ctx, session.ShelterID, 1); err != nil {
			log.WithError(err).Error("Failed to release occupancy")
			return fmt.Errorf("service: could not release occupancy: %w", err)
		}
		event = notify.EventAllocationCompleted
	default:
		return nil
	}

	if err := s.repo.UpdateAllocationStatus(ctx, session.AllocationID, tr.To, arrivedAt); err != nil {
		log.WithError(err).Error("Failed to update allocation status")
		return fmt.Errorf("service: could not update allocation: %w", err)
	}
	s.publish(ctx, log, notify.NewEvent(event, session.UserID, session.ShelterID, session.AlertID, string(tr.To)))
	return nil
}

// restoreSession восстанавливает сессию по активному назначению
func (s *shelterService) restoreSession(ctx context.Context, userID int64) (*models.TrackingSession, error) {
	alloc, err := s.repo.GetActiveAllocation(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get active allocation: %w", err)
	}
	if alloc == nil {
		return nil, apperr.NotFound(fmt.Sprintf("user %d has no active allocation", userID))
	}
	return &models.TrackingSession{
		UserID:       userID,
		AllocationID: alloc.ID,
		ShelterID:    alloc.ShelterID,
		AlertID:      alloc.AlertID,
		Status:       alloc.Status,
		Active:       true,
	}, nil
}

// CheckEmergencyStatus возвращает состояние тревоги и назначения пользователя
func (s *shelterService) CheckEmergencyStatus(ctx context.Context, userID int64) (*EmergencyStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "CheckEmergencyStatus",
		"user_id": userID,
	})

	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to get user")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	alloc, err := s.repo.GetActiveAllocation(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get active allocation")
		return nil, fmt.Errorf("service: could not get active allocation: %w", err)
	}
	if alloc == nil {
		return &EmergencyStatus{UserStatus: UserStatusSafe}, nil
	}

	alert, err := s.repo.GetAlert(ctx, alloc.AlertID)
	if err != nil {
		log.WithError(err).Error("Failed to get alert")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}

	shelterID := alloc.ShelterID
	status := &EmergencyStatus{
		IsAlertActive: alert.Active,
		UserStatus:    string(alloc.Status),
		ShelterID:     &shelterID,
	}
	if alloc.Status == models.StatusArrived && alloc.ArrivedAt != nil {
		seconds := int(s.now().Sub(*alloc.ArrivedAt).Seconds())
		if seconds < 0 {
			seconds = 0
		}
		status.TimeInShelter = &seconds
	}
	return status, nil
}

// ReleaseAllocation явно освобождает назначение пользователя
func (s *shelterService) ReleaseAllocation(ctx context.Context, userID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "ReleaseAllocation",
		"user_id": userID,
	})

	alloc, err := s.repo.GetActiveAllocation(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get active allocation")
		return fmt.Errorf("service: could not get active allocation: %w", err)
	}
	if alloc == nil {
		return apperr.NotFound(fmt.Sprintf("user %d has no active allocation", userID))
	}
	if err := s.release(ctx, log, alloc); err != nil {
		return err
	}
	log.WithField("allocation_id", alloc.ID).Info("Allocation released")
	return nil
}

// release освобождает место, завершает назначение и сессию
func (s *shelterService) release(ctx context.Context, log *logrus.Entry, alloc *models.Allocation) error {
	if err := s.releaseSeat(ctx, alloc.ShelterID, 1); err != nil {
		log.WithError(err).Error("Failed to release occupancy")
		return fmt.Errorf("service: could not release occupancy: %w", err)
	}
	if err := s.repo.UpdateAllocationStatus(ctx, alloc.ID, models.StatusCompleted, nil); err != nil {
		log.WithError(err).Error("Failed to complete allocation")
		return fmt.Errorf("service: could not complete allocation: %w", err)
	}

	session, err := s.repo.GetSession(ctx, alloc.UserID)
	if err != nil {
		log.WithError(err).Warn("Failed to get tracking session")
	} else if session != nil && session.AllocationID == alloc.ID {
		tracking.Complete(session, s.now().UTC())
		if err := s.repo.SaveSession(ctx, session); err != nil {
			log.WithError(err).Warn("Failed to stop tracking session")
		}
	}

	s.publish(ctx, log, notify.NewEvent(notify.EventAllocationCompleted, alloc.UserID, alloc.ShelterID, alloc.AlertID,
		string(models.StatusCompleted)))
	return nil
}

// EndAlert завершает тревогу: снимает ее с активных, освобождает места,
// завершает назначения, останавливает сессии и удаляет устаревшие дубликаты.
// Назначение завершается только вместе с освобождением его места, поэтому
// повторный вызов дочищает то, что не успел предыдущий.
func (s *shelterService) EndAlert(ctx context.Context, alertID int64) (*SweepResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "shelter",
		"method":   "EndAlert",
		"alert_id": alertID,
	})

	alert, err := s.repo.GetAlert(ctx, alertID)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert")
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	// После снятия тревоги новые назначения по ней не создаются
	if alert.Active {
		if err := s.repo.EndAlert(ctx, alertID, s.now().UTC()); err != nil {
			log.WithError(err).Error("Failed to end alert")
			return nil, fmt.Errorf("service: could not end alert: %w", err)
		}
	}

	allocations, err := s.repo.ListActiveAllocationsByAlert(ctx, alertID)
	if err != nil {
		log.WithError(err).Error("Failed to list active allocations")
		return nil, fmt.Errorf("service: could not list allocations: %w", err)
	}

	byShelter := make(map[int64][]int64)
	for _, a := range allocations {
		byShelter[a.ShelterID] = append(byShelter[a.ShelterID], a.ID)
	}
	ids := make([]int64, 0, len(byShelter))
	for id := range byShelter {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := &SweepResult{AlertID: alertID}
	for _, id := range ids {
		allocIDs := byShelter[id]
		if err := s.releaseSeat(ctx, id, len(allocIDs)); err != nil {
			log.WithError(err).WithField("shelter_id", id).Error("Failed to release occupancy")
			return nil, fmt.Errorf("service: could not release occupancy: %w", err)
		}
		result.Released += len(allocIDs)

		completed, err := s.repo.CompleteAllocations(ctx, alertID, allocIDs)
		if err != nil {
			log.WithError(err).WithField("shelter_id", id).Error("Failed to complete allocations")
			return nil, fmt.Errorf("service: could not complete allocations: %w", err)
		}
		result.Completed += completed
	}

	if err := s.repo.DeactivateSessionsByAlert(ctx, alertID); err != nil {
		log.WithError(err).Error("Failed to stop tracking sessions")
		return nil, fmt.Errorf("service: could not stop tracking sessions: %w", err)
	}
	if result.Purged, err = s.repo.PurgeStaleAllocations(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to purge stale allocations")
	}

	for _, a := range allocations {
		s.publish(ctx, log, notify.NewEvent(notify.EventAllocationCompleted, a.UserID, a.ShelterID, alertID,
			string(models.StatusCompleted)))
	}

	log.WithFields(logrus.Fields{
		"released":  result.Released,
		"completed": result.Completed,
		"purged":    result.Purged,
	}).Info("Alert ended")
	return result, nil
}

// releaseSeat освобождает места, при необходимости подгружая убежище в учет
func (s *shelterService) releaseSeat(ctx context.Context, shelterID int64, n int) error {
	if _, _, ok := s.ledger.Occupancy(shelterID); !ok {
		shelter, err := s.repo.GetShelter(ctx, shelterID)
		if err != nil {
			return err
		}
		s.ledger.Ensure([]*models.Shelter{shelter})
	}
	return s.ledger.Release(ctx, shelterID, n)
}
