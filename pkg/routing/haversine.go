package routing

import (
	"context"
	"math"
)

// HaversineProvider answers from straight-line distance. Used when no provider
// key is configured and as a fallback for failed elements.
type HaversineProvider struct {
	// WalkingSpeedKmPerMin converts distance to duration.
	WalkingSpeedKmPerMin float64
}

func NewHaversineProvider(walkingSpeedKmPerMin float64) *HaversineProvider {
	if walkingSpeedKmPerMin <= 0 {
		walkingSpeedKmPerMin = 0.6
	}
	return &HaversineProvider{WalkingSpeedKmPerMin: walkingSpeedKmPerMin}
}

// StraightLineKm returns the great-circle distance between two points.
func StraightLineKm(a, b Point) float64 {
	const earthRadiusKm = 6371.0
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(a.Lat))*math.Cos(rad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Estimate builds a straight-line element at the given walking speed.
func (h *HaversineProvider) Estimate(a, b Point) Element {
	d := StraightLineKm(a, b)
	return Element{
		DistanceKm:      d,
		DurationSeconds: int(math.Round(d / h.WalkingSpeedKmPerMin * 60)),
		Status:          StatusOK,
	}
}

func (h *HaversineProvider) Matrix(_ context.Context, origins, destinations []Point) ([][]Element, error) {
	rows := make([][]Element, len(origins))
	for i, o := range origins {
		rows[i] = make([]Element, len(destinations))
		for j, d := range destinations {
			rows[i][j] = h.Estimate(o, d)
		}
	}
	return rows, nil
}

func (h *HaversineProvider) Directions(_ context.Context, origin, destination Point) (*Route, error) {
	e := h.Estimate(origin, destination)
	return &Route{
		DistanceKm:      e.DistanceKm,
		DurationSeconds: e.DurationSeconds,
		Points:          []Point{origin, destination},
		Instructions:    []string{"Walk directly to the shelter"},
	}, nil
}

func (h *HaversineProvider) MaxElements() int {
	return DefaultMaxElements
}
