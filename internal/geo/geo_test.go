package geo

import (
	"math"
	"testing"

	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle() []models.Coordinate {
	return []models.Coordinate{
		{Latitude: 32.0, Longitude: 34.0},
		{Latitude: 32.0, Longitude: 35.0},
		{Latitude: 33.0, Longitude: 34.5},
	}
}

func TestHaversine(t *testing.T) {
	assert.InDelta(t, 0, Haversine(32.08, 34.78, 32.08, 34.78), 1e-9)
	// Один градус широты примерно 111.19 км
	assert.InDelta(t, 111.19, Haversine(0, 0, 1, 0), 0.01)
	// Тель-Авив - Иерусалим около 54 км
	assert.InDelta(t, 54, Haversine(32.0853, 34.7818, 31.7683, 35.2137), 1.5)
}

func TestContainsPoint_TriangleCentroid(t *testing.T) {
	poly := triangle()
	c := Centroid(poly)
	assert.True(t, ContainsPoint(poly, c.Latitude, c.Longitude))
}

func TestContainsPoint_Outside(t *testing.T) {
	poly := triangle()
	assert.False(t, ContainsPoint(poly, 40.0, 40.0))
	assert.False(t, ContainsPoint(poly, 32.5, 33.0))
}

func TestContainsPoint_TwoVertices(t *testing.T) {
	poly := []models.Coordinate{{Latitude: 0, Longitude: 0}, {Latitude: 1, Longitude: 1}}
	assert.False(t, ContainsPoint(poly, 0.5, 0.5))
	assert.False(t, ContainsPoint(poly, 0, 0))
}

func TestContainsPoint_RayThroughVertex(t *testing.T) {
	// Ромб: горизонтальный луч из центра проходит ровно через правую вершину
	diamond := []models.Coordinate{
		{Latitude: 0, Longitude: 1},
		{Latitude: 1, Longitude: 2},
		{Latitude: 2, Longitude: 1},
		{Latitude: 1, Longitude: 0},
	}
	assert.True(t, ContainsPoint(diamond, 1, 1))
	assert.False(t, ContainsPoint(diamond, 1, -1))
}

func TestGeomRoundTrip(t *testing.T) {
	poly := triangle()
	g, err := ToGeom(poly)
	require.NoError(t, err)
	assert.Equal(t, 4, g.LinearRing(0).NumCoords())
	assert.Equal(t, poly, FromGeom(g))
}

func TestDistanceToPathKm(t *testing.T) {
	path := []models.Coordinate{
		{Latitude: 32.0, Longitude: 34.0},
		{Latitude: 32.0, Longitude: 34.01},
	}
	onPath := models.Coordinate{Latitude: 32.0, Longitude: 34.005}
	assert.InDelta(t, 0, DistanceToPathKm(onPath, path), 1e-6)

	// ~0.001 градуса широты = ~111 м
	offPath := models.Coordinate{Latitude: 32.001, Longitude: 34.005}
	assert.InDelta(t, 0.111, DistanceToPathKm(offPath, path), 0.005)

	assert.True(t, math.IsInf(DistanceToPathKm(onPath, nil), 1))
}

func TestToGeom_TooFewVertices(t *testing.T) {
	_, err := ToGeom([]models.Coordinate{{Latitude: 1, Longitude: 1}})
	assert.Error(t, err)
}
