// Package metrics регистрирует метрики Prometheus сервиса.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	AllocationRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_allocation_runs_total",
		Help: "Total allocation runs by mode",
	}, []string{"mode"})
	PeopleAssignedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shelter_people_assigned_total",
		Help: "Total people assigned to shelters",
	})
	PeopleUnassignedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shelter_people_unassigned_total",
		Help: "Total people left without a shelter after a run",
	})
	AllocationDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "shelter_allocation_duration_ms",
		Help:    "Allocation run duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	RouteCacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_route_cache_hits_total",
		Help: "Route cache hits by kind",
	}, []string{"kind"})
	RouteCacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_route_cache_misses_total",
		Help: "Route cache misses by kind",
	}, []string{"kind"})
	RouteCacheErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_route_cache_errors_total",
		Help: "Swallowed route cache errors by operation",
	}, []string{"op"})
	RoutingRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_routing_requests_total",
		Help: "Routing provider calls by endpoint and outcome",
	}, []string{"endpoint", "outcome"})
	TrackingTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_tracking_transitions_total",
		Help: "Tracking state transitions by target status",
	}, []string{"status"})
	NotificationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_notifications_total",
		Help: "Notification outbox events by stage and outcome",
	}, []string{"stage", "outcome"})
	ZoneCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_zone_cache_total",
		Help: "Zone list cache lookups by outcome",
	}, []string{"outcome"})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelter_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})
)

func init() {
	prometheus.MustRegister(AllocationRunsTotal)
	prometheus.MustRegister(PeopleAssignedTotal)
	prometheus.MustRegister(PeopleUnassignedTotal)
	prometheus.MustRegister(AllocationDurationMs)
	prometheus.MustRegister(RouteCacheHitsTotal)
	prometheus.MustRegister(RouteCacheMissesTotal)
	prometheus.MustRegister(RouteCacheErrorsTotal)
	prometheus.MustRegister(RoutingRequestsTotal)
	prometheus.MustRegister(TrackingTransitionsTotal)
	prometheus.MustRegister(NotificationsTotal)
	prometheus.MustRegister(ZoneCacheTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
}

// Handler отдает зарегистрированные метрики для /metrics
func Handler() http.Handler { return promhttp.Handler() }
