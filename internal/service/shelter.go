package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/allocation"
	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/config"
	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/geofence"
	"github.com/shenikar/shelter_dispatch_system/internal/ledger"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/shenikar/shelter_dispatch_system/internal/notify"
	"github.com/shenikar/shelter_dispatch_system/internal/tracking"
	"github.com/shenikar/shelter_dispatch_system/pkg/routing"
	"github.com/sirupsen/logrus"
)

const (
	msgNoShelter       = "No shelter with free space is within walking distance. Take the nearest cover."
	msgShelterAssigned = "Shelter assigned. Follow the route to the shelter."
	msgContinueRoute   = "Continue to your assigned shelter."
	msgAlreadyArrived  = "You are already in your assigned shelter."
	msgDirectRoute     = "Head directly to the shelter."
)

// ShelterService определяет контракт бизнес-логики распределения по убежищам
type ShelterService interface {
	CheckLocation(ctx context.Context, userID *int64, lat, lon float64) (*geofence.LocationStatus, error)
	RequestShelterRoute(ctx context.Context, userID int64, lat, lon float64) (*RouteResponse, error)
	UpdateUserLocation(ctx context.Context, userID int64, lat, lon float64) (*LocationUpdate, error)
	CheckEmergencyStatus(ctx context.Context, userID int64) (*EmergencyStatus, error)
	GetAreaSheltersStatus(ctx context.Context, lat, lon, radiusKm float64) (*AreaStatus, error)

	RunAllocation(ctx context.Context, req AllocationRequest) (*AllocationOutcome, error)
	AllocateAlert(ctx context.Context, alertID int64, req AllocationRequest) (*AllocationOutcome, error)
	EndAlert(ctx context.Context, alertID int64) (*SweepResult, error)
	ReleaseAllocation(ctx context.Context, userID int64) error

	CreateShelter(ctx context.Context, shelter *models.Shelter) error
	CreateZone(ctx context.Context, zone *models.AlertZone) error
	StartAlert(ctx context.Context, zoneID int64) (*models.ActiveAlert, error)
}

type shelterService struct {
	repo      Repository
	ledger    *ledger.Ledger
	routes    RouteCache
	matcher   *geofence.Matcher
	tracker   *tracking.Machine
	publisher notify.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewShelterService(repo Repository, l *ledger.Ledger, routes RouteCache, publisher notify.Publisher,
	logger *logrus.Logger, cfg *config.Config) ShelterService {
	return &shelterService{
		repo:    repo,
		ledger:  l,
		routes:  routes,
		matcher: geofence.NewMatcher(repo),
		tracker: tracking.NewMachine(tracking.Thresholds{
			ArrivalKm:   cfg.ArrivalThresholdKm,
			LeaveKm:     cfg.LeaveThresholdKm,
			DeviationKm: cfg.DeviationToleranceKm,
		}),
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CheckLocation проверяет, находится ли точка в зоне тревоги, и сохраняет факт проверки
func (s *shelterService) CheckLocation(ctx context.Context, userID *int64, lat, lon float64) (*geofence.LocationStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "CheckLocation",
		"lat":     lat,
		"lon":     lon,
	})
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	status, err := s.matcher.CheckLocation(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to check location against alert zones")
		return nil, fmt.Errorf("service: could not check location: %w", err)
	}

	check := &models.LocationCheck{
		UserID:         userID,
		Latitude:       lat,
		Longitude:      lon,
		ZoneName:       status.ZoneName,
		HasActiveAlert: status.HasActiveAlert,
	}
	if err := s.repo.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Warn("Failed to save location check")
	}

	log.WithFields(logrus.Fields{
		"in_zone":      status.IsInZone,
		"active_alert": status.HasActiveAlert,
	}).Info("Location checked")
	return status, nil
}

// RequestShelterRoute назначает пользователю убежище или возвращает уже назначенное
func (s *shelterService) RequestShelterRoute(ctx context.Context, userID int64, lat, lon float64) (*RouteResponse, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "RequestShelterRoute",
		"user_id": userID,
	})
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get user")
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}

	status, err := s.matcher.CheckLocation(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to check location against alert zones")
		return nil, fmt.Errorf("service: could not check location: %w", err)
	}
	if !status.IsInZone || !status.HasActiveAlert || status.Alert == nil {
		return &RouteResponse{Success: false, Message: status.Message}, nil
	}
	alert := status.Alert
	location := models.Coordinate{Latitude: lat, Longitude: lon}

	existing, err := s.repo.GetActiveAllocation(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to get active allocation")
		return nil, fmt.Errorf("service: could not get active allocation: %w", err)
	}
	if existing != nil {
		if existing.AlertID == alert.ID {
			return s.resumeAllocation(ctx, log, existing, location)
		}
		// Назначение по другой тревоге больше не актуально
		if err := s.release(ctx, log, existing); err != nil {
			return nil, err
		}
	}

	shelters, err := s.repo.ListSheltersWithin(ctx, lat, lon, s.searchRadiusKm())
	if err != nil {
		log.WithError(err).Error("Failed to list shelters nearby")
		return nil, fmt.Errorf("service: could not list shelters: %w", err)
	}

	person := models.Person{ID: user.ID, Age: user.Age, Location: location}
	_, allocations, err := s.commit(ctx, log, alert, []models.Person{person}, shelters, nil, nil, s.settings(nil), "single")
	if err != nil {
		return nil, err
	}
	if len(allocations) == 0 {
		log.Warn("No shelter available for user")
		return &RouteResponse{Success: false, Message: msgNoShelter, RequiresAction: true, ActionType: ActionFindCover}, nil
	}

	alloc := allocations[0]
	shelter := findShelter(shelters, alloc.ShelterID)
	route := s.buildRoute(ctx, location, shelter.Location)
	session := &models.TrackingSession{
		UserID:       userID,
		AllocationID: alloc.ID,
		ShelterID:    alloc.ShelterID,
		AlertID:      alert.ID,
		LastLocation: location,
		LastUpdateAt: alloc.AllocatedAt,
		Status:       models.StatusEnRoute,
		Route:        route,
		Active:       true,
	}
	if err := s.repo.SaveSession(ctx, session); err != nil {
		log.WithError(err).Warn("Failed to save tracking session, it will be restored on next update")
	}
	s.publish(ctx, log, notify.NewEvent(notify.EventShelterAssigned, userID, alloc.ShelterID, alert.ID, string(alloc.Status)))

	log.WithField("shelter_id", alloc.ShelterID).Info("Shelter assigned")
	return &RouteResponse{
		Success:        true,
		Message:        msgShelterAssigned,
		Shelter:        s.shelterDetails(shelter, location),
		Route:          route,
		RequiresAction: true,
		ActionType:     ActionNavigate,
	}, nil
}

// resumeAllocation отвечает по уже существующему назначению
func (s *shelterService) resumeAllocation(ctx context.Context, log *logrus.Entry, alloc *models.Allocation,
	location models.Coordinate) (*RouteResponse, error) {
	shelter, err := s.repo.GetShelter(ctx, alloc.ShelterID)
	if err != nil {
		log.WithError(err).Error("Failed to get assigned shelter")
		return nil, fmt.Errorf("service: could not get assigned shelter: %w", err)
	}
	details := s.shelterDetails(shelter, location)

	if details.DistanceKm < s.tracker.Thresholds().ArrivalKm {
		return &RouteResponse{
			Success:    true,
			Message:    msgAlreadyArrived,
			HasArrived: true,
			Shelter:    details,
		}, nil
	}

	route := s.buildRoute(ctx, location, shelter.Location)
	session, err := s.repo.GetSession(ctx, alloc.UserID)
	if err != nil {
		log.WithError(err).Warn("Failed to get tracking session")
	} else if session != nil && session.AllocationID == alloc.ID {
		session.Route = route
		if err := s.repo.SaveSession(ctx, session); err != nil {
			log.WithError(err).Warn("Failed to save recalculated route")
		}
	}

	action := ActionNavigate
	if alloc.Status == models.StatusLeftShelter {
		action = ActionReturnToShelter
	}
	return &RouteResponse{
		Success:        true,
		Message:        msgContinueRoute,
		Shelter:        details,
		Route:          route,
		RequiresAction: true,
		ActionType:     action,
	}, nil
}

// CreateShelter регистрирует убежище и добавляет его в учет занятости
func (s *shelterService) CreateShelter(ctx context.Context, shelter *models.Shelter) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "shelter",
		"method":      "CreateShelter",
		"provider_id": shelter.ProviderID,
	})
	if shelter.Name == "" {
		return apperr.Validation("shelter name is required")
	}
	if shelter.Capacity < 0 || shelter.Occupancy < 0 || shelter.Occupancy > shelter.Capacity {
		return apperr.Validation("shelter occupancy must be between 0 and capacity")
	}
	if err := validateCoordinates(shelter.Location.Latitude, shelter.Location.Longitude); err != nil {
		return err
	}

	shelter.Active = true
	if err := s.repo.CreateShelter(ctx, shelter); err != nil {
		log.WithError(err).Warn("Failed to create shelter in repository")
		return fmt.Errorf("service: could not create shelter: %w", err)
	}
	s.ledger.Ensure([]*models.Shelter{shelter})

	log.WithField("shelter_id", shelter.ID).Info("Shelter created successfully")
	return nil
}

// CreateZone регистрирует зону тревоги
func (s *shelterService) CreateZone(ctx context.Context, zone *models.AlertZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "CreateZone",
		"name":    zone.Name,
	})
	if zone.Name == "" {
		return apperr.Validation("zone name is required")
	}
	if len(zone.Polygon) < 3 {
		return apperr.Validation("zone polygon needs at least 3 vertices")
	}
	if zone.ResponseBudgetSeconds <= 0 {
		return apperr.Validation("response budget must be positive")
	}

	if err := s.repo.CreateZone(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create zone in repository")
		return fmt.Errorf("service: could not create zone: %w", err)
	}
	log.WithField("zone_id", zone.ID).Info("Zone created successfully")
	return nil
}

// StartAlert объявляет тревогу в зоне; одновременно в зоне может быть только одна тревога
func (s *shelterService) StartAlert(ctx context.Context, zoneID int64) (*models.ActiveAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "StartAlert",
		"zone_id": zoneID,
	})

	zone, err := s.repo.GetZone(ctx, zoneID)
	if err != nil {
		log.WithError(err).Warn("Failed to get zone")
		return nil, fmt.Errorf("service: could not get zone: %w", err)
	}
	alerts, err := s.repo.ListActiveAlerts(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active alerts")
		return nil, fmt.Errorf("service: could not list active alerts: %w", err)
	}
	for _, a := range alerts {
		if a.ZoneID == zoneID {
			return nil, apperr.Conflict(fmt.Sprintf("zone %d already has an active alert", zoneID))
		}
	}

	alert := &models.ActiveAlert{
		ZoneID:    zone.ID,
		ZoneName:  zone.Name,
		StartedAt: s.now().UTC(),
		Center:    geo.Centroid(zone.Polygon),
		Active:    true,
	}
	if err := s.repo.StartAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to start alert in repository")
		return nil, fmt.Errorf("service: could not start alert: %w", err)
	}
	log.WithField("alert_id", alert.ID).Info("Alert started")
	return alert, nil
}

func (s *shelterService) settings(override *allocation.Settings) allocation.Settings {
	if override != nil {
		return *override
	}
	st := allocation.DefaultSettings()
	st.AgePriority = s.cfg.AgePriority
	if s.cfg.TravelTimeMinutes > 0 {
		st.TravelTimeMinutes = s.cfg.TravelTimeMinutes
	}
	if s.cfg.WalkingSpeedKmPerMin > 0 {
		st.WalkingSpeedKmPerMin = s.cfg.WalkingSpeedKmPerMin
	}
	return st
}

func (s *shelterService) walkingSpeed() float64 {
	if s.cfg.WalkingSpeedKmPerMin > 0 {
		return s.cfg.WalkingSpeedKmPerMin
	}
	return allocation.DefaultWalkingSpeedKmPerMin
}

// searchRadiusKm - радиус выборки убежищ; не меньше допустимой пешей дистанции
func (s *shelterService) searchRadiusKm() float64 {
	return math.Max(s.cfg.SearchRadiusKm, s.settings(nil).MaxDistanceKm())
}

// buildRoute строит маршрут; при недоступности маршрутизации возвращает прямую линию
func (s *shelterService) buildRoute(ctx context.Context, from, to models.Coordinate) *models.RouteSummary {
	var r *routing.Route
	if s.routes != nil {
		r = s.routes.Route(ctx, point(from), point(to))
	}
	if r == nil {
		d := geo.Distance(from, to)
		return &models.RouteSummary{
			DistanceKm:      d,
			DurationSeconds: tracking.EstimateSeconds(d, s.walkingSpeed()),
			Points:          []models.Coordinate{from, to},
			Instructions:    []string{msgDirectRoute},
		}
	}

	summary := &models.RouteSummary{
		DistanceKm:      r.DistanceKm,
		DurationSeconds: r.DurationSeconds,
		Polyline:        r.Polyline,
		Instructions:    r.Instructions,
		Points:          make([]models.Coordinate, 0, len(r.Points)),
	}
	for _, p := range r.Points {
		summary.Points = append(summary.Points, models.Coordinate{Latitude: p.Lat, Longitude: p.Lon})
	}
	return summary
}

// shelterDetails дополняет убежище текущей занятостью из учета
func (s *shelterService) shelterDetails(shelter *models.Shelter, from models.Coordinate) *ShelterDetails {
	occupancy, capacity := shelter.Occupancy, shelter.Capacity
	if occ, cp, ok := s.ledger.Occupancy(shelter.ID); ok {
		occupancy, capacity = occ, cp
	}
	return &ShelterDetails{
		ID:         shelter.ID,
		Name:       shelter.Name,
		Address:    shelter.Address,
		Location:   shelter.Location,
		DistanceKm: geo.Distance(from, shelter.Location),
		Capacity:   capacity,
		Occupancy:  occupancy,
		Status:     ledger.StatusFor(occupancy, capacity),
	}
}

func (s *shelterService) publish(ctx context.Context, log *logrus.Entry, event notify.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish notification")
	}
}

func validateCoordinates(lat, lon float64) error {
	if lat == 0 && lon == 0 {
		return apperr.Validation("coordinates are required")
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return apperr.Validation("coordinates are out of range")
	}
	return nil
}

func point(c models.Coordinate) routing.Point {
	return routing.Point{Lat: c.Latitude, Lon: c.Longitude}
}

func findShelter(shelters []*models.Shelter, id int64) *models.Shelter {
	for _, s := range shelters {
		if s.ID == id {
			return s
		}
	}
	return nil
}
