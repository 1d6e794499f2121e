package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/shenikar/shelter_dispatch_system/internal/apperr"
	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/ledger"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// GetAreaSheltersStatus возвращает заполненность убежищ в радиусе от точки
func (s *shelterService) GetAreaSheltersStatus(ctx context.Context, lat, lon, radiusKm float64) (*AreaStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "shelter",
		"method":    "GetAreaSheltersStatus",
		"radius_km": radiusKm,
	})
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		return nil, apperr.Validation("radius must be positive")
	}

	shelters, err := s.repo.ListSheltersWithin(ctx, lat, lon, radiusKm)
	if err != nil {
		log.WithError(err).Error("Failed to list shelters in area")
		return nil, fmt.Errorf("service: could not list shelters: %w", err)
	}
	s.ledger.Ensure(shelters)

	center := models.Coordinate{Latitude: lat, Longitude: lon}
	area := &AreaStatus{Shelters: make([]AreaShelter, 0, len(shelters))}
	for _, sh := range shelters {
		occupancy, capacity := sh.Occupancy, sh.Capacity
		if occ, cp, ok := s.ledger.Occupancy(sh.ID); ok {
			occupancy, capacity = occ, cp
		}
		available := capacity - occupancy
		if available < 0 {
			available = 0
		}
		percentage := 100.0
		if capacity > 0 {
			percentage = math.Round(float64(occupancy)/float64(capacity)*10000) / 100
		}
		status := ledger.StatusFor(occupancy, capacity)

		area.Shelters = append(area.Shelters, AreaShelter{
			ID:                  sh.ID,
			Name:                sh.Name,
			Address:             sh.Address,
			Location:            sh.Location,
			Capacity:            capacity,
			Occupancy:           occupancy,
			AvailableSpaces:     available,
			OccupancyPercentage: percentage,
			Status:              status,
			DistanceKm:          geo.Distance(center, sh.Location),
		})
		if status == models.ShelterFull {
			area.FullShelters++
		} else {
			area.AvailableShelters++
		}
	}
	area.TotalShelters = len(area.Shelters)

	sort.SliceStable(area.Shelters, func(i, j int) bool {
		return area.Shelters[i].DistanceKm < area.Shelters[j].DistanceKm
	})
	return area, nil
}
