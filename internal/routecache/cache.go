// Package routecache - кэш расстояний и маршрутов перед внешним провайдером маршрутов.
package routecache

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/shenikar/shelter_dispatch_system/internal/metrics"
	"github.com/shenikar/shelter_dispatch_system/pkg/routing"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// ~50 м: допуск для запросов только расстояния
	DefaultDistancePrecision = 0.0005
	// ~11 м: допуск для маршрутов
	DefaultRoutePrecision = 0.0001

	SourceCache    = "cache"
	SourceProvider = "provider"
	SourceFallback = "fallback"
)

// Pair - пара точка отправления / точка назначения
type Pair struct {
	Origin      routing.Point
	Destination routing.Point
}

// DistanceResult - расстояние для одной пары
type DistanceResult struct {
	DistanceKm      float64 `json:"distance_km"`
	DurationSeconds int     `json:"duration_seconds"`
	Source          string  `json:"-"`
}

type Options struct {
	DistanceTTL       time.Duration
	RouteTTL          time.Duration
	DistancePrecision float64
	RoutePrecision    float64
	// BatchInterval - минимальный интервал между пакетными вызовами провайдера
	BatchInterval time.Duration
	Concurrency   int
	WalkingSpeed  float64
}

func (o *Options) setDefaults() {
	if o.DistanceTTL <= 0 {
		o.DistanceTTL = time.Hour
	}
	if o.RouteTTL <= 0 {
		o.RouteTTL = time.Hour
	}
	if o.DistancePrecision <= 0 {
		o.DistancePrecision = DefaultDistancePrecision
	}
	if o.RoutePrecision <= 0 {
		o.RoutePrecision = DefaultRoutePrecision
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 2
	}
}

type Cache struct {
	store    Store
	provider routing.Provider
	fallback *routing.HaversineProvider
	limiter  *rate.Limiter
	logger   *logrus.Logger
	opts     Options
}

func New(store Store, provider routing.Provider, logger *logrus.Logger, opts Options) *Cache {
	opts.setDefaults()
	limit := rate.Inf
	if opts.BatchInterval > 0 {
		limit = rate.Every(opts.BatchInterval)
	}
	return &Cache{
		store:    store,
		provider: provider,
		fallback: routing.NewHaversineProvider(opts.WalkingSpeed),
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger,
		opts:     opts,
	}
}

func quantize(v, precision float64) int64 {
	return int64(math.Round(v / precision))
}

func (c *Cache) pointKey(p routing.Point, precision float64) string {
	return fmt.Sprintf("%d:%d", quantize(p.Lat, precision), quantize(p.Lon, precision))
}

func (c *Cache) distanceKey(p Pair) string {
	return "dist:" + c.pointKey(p.Origin, c.opts.DistancePrecision) + ":" + c.pointKey(p.Destination, c.opts.DistancePrecision)
}

func (c *Cache) routeKey(p Pair) string {
	return "route:" + c.pointKey(p.Origin, c.opts.RoutePrecision) + ":" + c.pointKey(p.Destination, c.opts.RoutePrecision)
}

// Distance возвращает расстояние для одной пары
func (c *Cache) Distance(ctx context.Context, origin, destination routing.Point) DistanceResult {
	return c.Distances(ctx, []Pair{{Origin: origin, Destination: destination}})[0]
}

// Distances возвращает расстояния для всех пар в исходном порядке.
// Промахи собираются в пакетные запросы к провайдеру без повторов точек;
// неудачные элементы заменяются оценкой по прямой и не кэшируются.
func (c *Cache) Distances(ctx context.Context, pairs []Pair) []DistanceResult {
	log := c.logger.WithFields(logrus.Fields{"component": "routecache", "method": "Distances", "pairs": len(pairs)})
	results := make([]DistanceResult, len(pairs))
	if len(pairs) == 0 {
		return results
	}

	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = c.distanceKey(p)
	}

	cached, err := c.store.MGet(ctx, keys)
	if err != nil {
		log.WithError(err).Warn("Route cache read failed, querying provider")
		metrics.RouteCacheErrorsTotal.WithLabelValues("read").Inc()
		cached = nil
	}

	var missing []int
	for i := range pairs {
		if i < len(cached) && cached[i] != nil {
			var r DistanceResult
			if err := json.Unmarshal(cached[i], &r); err == nil {
				r.Source = SourceCache
				results[i] = r
				continue
			}
		}
		missing = append(missing, i)
	}
	metrics.RouteCacheHitsTotal.WithLabelValues("distance").Add(float64(len(pairs) - len(missing)))
	metrics.RouteCacheMissesTotal.WithLabelValues("distance").Add(float64(len(missing)))
	if len(missing) == 0 {
		return results
	}

	elements := c.fetchMatrix(ctx, pairs, missing)

	toCache := make(map[string][]byte)
	for _, i := range missing {
		p := pairs[i]
		el, ok := elements[c.pointKey(p.Origin, c.opts.DistancePrecision)+"|"+c.pointKey(p.Destination, c.opts.DistancePrecision)]
		if !ok || !el.OK() {
			fb := c.fallback.Estimate(p.Origin, p.Destination)
			results[i] = DistanceResult{DistanceKm: fb.DistanceKm, DurationSeconds: fb.DurationSeconds, Source: SourceFallback}
			continue
		}
		r := DistanceResult{DistanceKm: el.DistanceKm, DurationSeconds: el.DurationSeconds, Source: SourceProvider}
		results[i] = r
		if payload, err := json.Marshal(r); err == nil {
			toCache[keys[i]] = payload
		}
	}

	if err := c.store.SetMany(ctx, toCache, c.opts.DistanceTTL); err != nil {
		log.WithError(err).Warn("Route cache write failed")
		metrics.RouteCacheErrorsTotal.WithLabelValues("write").Inc()
	}
	return results
}

type batch struct {
	origins      []routing.Point
	destinations []routing.Point
	originKeys   []string
	destKeys     []string
}

// fetchMatrix запрашивает у провайдера элементы для промахов.
// Ключ результата - "<origin>|<destination>" в сетке точности расстояний.
func (c *Cache) fetchMatrix(ctx context.Context, pairs []Pair, missing []int) map[string]routing.Element {
	var originKeys, destKeys []string
	var origins, destinations []routing.Point
	seenOrigin := make(map[string]bool)
	seenDest := make(map[string]bool)
	for _, i := range missing {
		ok := c.pointKey(pairs[i].Origin, c.opts.DistancePrecision)
		if !seenOrigin[ok] {
			seenOrigin[ok] = true
			originKeys = append(originKeys, ok)
			origins = append(origins, pairs[i].Origin)
		}
		dk := c.pointKey(pairs[i].Destination, c.opts.DistancePrecision)
		if !seenDest[dk] {
			seenDest[dk] = true
			destKeys = append(destKeys, dk)
			destinations = append(destinations, pairs[i].Destination)
		}
	}

	batches := splitBatches(origins, destinations, originKeys, destKeys, c.provider.MaxElements())

	var mu sync.Mutex
	elements := make(map[string]routing.Element)
	g := new(errgroup.Group)
	g.SetLimit(c.opts.Concurrency)
	for _, b := range batches {
		g.Go(func() error {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil
			}
			rows, err := c.provider.Matrix(ctx, b.origins, b.destinations)
			if err != nil {
				metrics.RoutingRequestsTotal.WithLabelValues("matrix", "error").Inc()
				c.logger.WithError(err).WithFields(logrus.Fields{
					"component": "routecache",
					"origins":   len(b.origins),
					"dests":     len(b.destinations),
				}).Warn("Routing provider batch failed, using straight-line fallback")
				return nil
			}
			metrics.RoutingRequestsTotal.WithLabelValues("matrix", "ok").Inc()

			mu.Lock()
			defer mu.Unlock()
			for oi := range b.origins {
				if oi >= len(rows) {
					break
				}
				for di := range b.destinations {
					if di >= len(rows[oi]) {
						break
					}
					elements[b.originKeys[oi]+"|"+b.destKeys[di]] = rows[oi][di]
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return elements
}

// splitBatches делит декартово произведение точек на пакеты не более maxElements элементов
func splitBatches(origins, destinations []routing.Point, originKeys, destKeys []string, maxElements int) []batch {
	if maxElements <= 0 {
		maxElements = routing.DefaultMaxElements
	}
	destChunk := len(destinations)
	if destChunk > maxElements {
		destChunk = maxElements
	}
	originChunk := maxElements / destChunk

	var out []batch
	for o := 0; o < len(origins); o += originChunk {
		oEnd := min(o+originChunk, len(origins))
		for d := 0; d < len(destinations); d += destChunk {
			dEnd := min(d+destChunk, len(destinations))
			out = append(out, batch{
				origins:      origins[o:oEnd],
				destinations: destinations[d:dEnd],
				originKeys:   originKeys[o:oEnd],
				destKeys:     destKeys[d:dEnd],
			})
		}
	}
	return out
}

// Route возвращает маршрут из кэша или от провайдера; при отказе провайдера - nil
func (c *Cache) Route(ctx context.Context, origin, destination routing.Point) *routing.Route {
	log := c.logger.WithFields(logrus.Fields{"component": "routecache", "method": "Route"})
	key := c.routeKey(Pair{Origin: origin, Destination: destination})

	val, err := c.store.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("Route cache read failed")
		metrics.RouteCacheErrorsTotal.WithLabelValues("read").Inc()
	}
	if val != nil {
		var route routing.Route
		if err := json.Unmarshal(val, &route); err == nil {
			metrics.RouteCacheHitsTotal.WithLabelValues("route").Inc()
			return &route
		}
	}
	metrics.RouteCacheMissesTotal.WithLabelValues("route").Inc()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil
	}
	route, err := c.provider.Directions(ctx, origin, destination)
	if err != nil {
		metrics.RoutingRequestsTotal.WithLabelValues("directions", "error").Inc()
		log.WithError(err).Warn("Routing provider directions failed")
		return nil
	}
	metrics.RoutingRequestsTotal.WithLabelValues("directions", "ok").Inc()

	payload, err := json.Marshal(route)
	if err == nil {
		err = c.store.SetMany(ctx, map[string][]byte{key: payload}, c.opts.RouteTTL)
	}
	if err != nil {
		log.WithError(err).Warn("Route cache write failed")
		metrics.RouteCacheErrorsTotal.WithLabelValues("write").Inc()
	}
	return route
}
