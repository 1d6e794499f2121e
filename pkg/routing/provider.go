// Package routing is a client for the external walking-route provider.
package routing

import (
	"context"
	"fmt"
)

// Element statuses as reported by the provider for a single origin/destination pair.
const (
	StatusOK          = "OK"
	StatusNotFound    = "NOT_FOUND"
	StatusZeroResults = "ZERO_RESULTS"
	StatusError       = "ERROR"
)

// DefaultMaxElements is the provider's per-call origin×destination limit.
const DefaultMaxElements = 100

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}

// Element is the provider's answer for one origin/destination pair.
type Element struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds int     `json:"duration_seconds"`
	Status          string  `json:"status"`
}

// OK reports whether the element carries a usable result.
func (e Element) OK() bool {
	return e.Status == StatusOK
}

// Route is a walking route with geometry and turn instructions.
type Route struct {
	DistanceKm      float64  `json:"distance_km"`
	DurationSeconds int      `json:"duration_seconds"`
	Polyline        string   `json:"polyline"`
	Points          []Point  `json:"points"`
	Instructions    []string `json:"instructions"`
}

// Provider computes walking distances and routes.
type Provider interface {
	// Matrix returns rows indexed by origin and columns by destination.
	Matrix(ctx context.Context, origins, destinations []Point) ([][]Element, error)
	Directions(ctx context.Context, origin, destination Point) (*Route, error)
	// MaxElements bounds len(origins)*len(destinations) for one Matrix call.
	MaxElements() int
}
