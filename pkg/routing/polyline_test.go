package routing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePolyline(t *testing.T) {
	// Example from the encoded polyline format reference.
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0].Lat, 1e-9)
	assert.InDelta(t, -120.2, points[0].Lon, 1e-9)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-9)
	assert.InDelta(t, -120.95, points[1].Lon, 1e-9)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-9)
	assert.InDelta(t, -126.453, points[2].Lon, 1e-9)
}

func TestDecodePolyline_Truncated(t *testing.T) {
	_, err := DecodePolyline("_p~iF~ps|")
	assert.Error(t, err)
}

func TestHaversineProvider(t *testing.T) {
	h := NewHaversineProvider(0.6)
	rows, err := h.Matrix(context.Background(), []Point{{Lat: 0, Lon: 0}}, []Point{{Lat: 0.01, Lon: 0}})
	require.NoError(t, err)
	assert.InDelta(t, 1.112, rows[0][0].DistanceKm, 0.001)
	assert.Equal(t, 111, rows[0][0].DurationSeconds)

	route, err := h.Directions(context.Background(), Point{Lat: 0, Lon: 0}, Point{Lat: 0.01, Lon: 0})
	require.NoError(t, err)
	assert.Len(t, route.Points, 2)
}
