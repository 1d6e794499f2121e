package routing

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestClient(srvURL string) *GoogleClient {
	return NewGoogleClient(GoogleOptions{
		APIKey:    "test-key",
		BaseURL:   srvURL,
		Timeout:   2 * time.Second,
		RateLimit: rate.Inf,
	})
}

func TestGoogleMatrix_ParsesElements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/distancematrix/json", r.URL.Path)
		assert.Equal(t, "walking", r.URL.Query().Get("mode"))
		assert.Equal(t, "32.000000,34.800000|32.001000,34.800000", r.URL.Query().Get("origins"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"rows": [
				{"elements": [{"status": "OK", "distance": {"value": 450}, "duration": {"value": 360}}]},
				{"elements": [{"status": "ZERO_RESULTS"}]}
			]
		}`)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	rows, err := c.Matrix(context.Background(),
		[]Point{{Lat: 32.0, Lon: 34.8}, {Lat: 32.001, Lon: 34.8}},
		[]Point{{Lat: 32.002, Lon: 34.8}},
	)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0][0].OK())
	assert.InDelta(t, 0.45, rows[0][0].DistanceKm, 1e-9)
	assert.Equal(t, 360, rows[0][0].DurationSeconds)
	assert.False(t, rows[1][0].OK())
	assert.Equal(t, StatusZeroResults, rows[1][0].Status)
}

func TestGoogleMatrix_TooManyElements(t *testing.T) {
	c := NewGoogleClient(GoogleOptions{APIKey: "k", MaxElements: 2})
	_, err := c.Matrix(context.Background(), make([]Point, 2), make([]Point, 2))
	assert.ErrorContains(t, err, "exceed limit")
}

func TestGoogleMatrix_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Matrix(context.Background(), []Point{{}}, []Point{{}})
	assert.ErrorContains(t, err, "status 503")
}

func TestGoogleMatrix_MissingKey(t *testing.T) {
	c := NewGoogleClient(GoogleOptions{})
	_, err := c.Matrix(context.Background(), []Point{{}}, []Point{{}})
	assert.ErrorContains(t, err, "api key not configured")
}

func TestGoogleDirections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/directions/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"routes": [{
				"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC_mqNvxq`+"`"+`@"},
				"legs": [{
					"distance": {"value": 520},
					"duration": {"value": 410},
					"steps": [
						{"html_instructions": "Head <b>north</b> on Main St"},
						{"html_instructions": "Turn <b>left</b>"}
					]
				}]
			}]
		}`)
	}))
	defer srv.Close()

	route, err := newTestClient(srv.URL).Directions(context.Background(), Point{Lat: 38.5, Lon: -120.2}, Point{Lat: 43.252, Lon: -126.453})

	require.NoError(t, err)
	assert.InDelta(t, 0.52, route.DistanceKm, 1e-9)
	assert.Equal(t, 410, route.DurationSeconds)
	assert.Equal(t, []string{"Head north on Main St", "Turn left"}, route.Instructions)
	require.Len(t, route.Points, 3)
	assert.InDelta(t, 38.5, route.Points[0].Lat, 1e-9)
}

func TestGoogleDirections_NoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"status": "ZERO_RESULTS", "routes": []}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Directions(context.Background(), Point{}, Point{})
	assert.ErrorContains(t, err, "ZERO_RESULTS")
}
