// Package geo содержит геометрические примитивы: расстояние по большому кругу,
// попадание точки в полигон и расстояние до маршрута.
package geo

import (
	"fmt"
	"math"

	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// kmPerDegree - длина одного градуса широты
const kmPerDegree = 111.32

// Haversine возвращает расстояние по большому кругу в километрах
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

// Distance - Haversine для пары координат
func Distance(a, b models.Coordinate) float64 {
	return Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ContainsPoint проверяет попадание точки в полигон методом пересечения луча.
// Для каждого ребра используется полуоткрытый интервал по широте, поэтому луч,
// проходящий через вершину, учитывается один раз. Полигон из менее чем трех
// вершин не содержит ни одной точки.
func ContainsPoint(polygon []models.Coordinate, lat, lon float64) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		yi, xi := polygon[i].Latitude, polygon[i].Longitude
		yj, xj := polygon[j].Latitude, polygon[j].Longitude

		if (yi > lat) != (yj > lat) {
			crossX := (xj-xi)*(lat-yi)/(yj-yi) + xi
			if lon < crossX {
				inside = !inside
			}
		}
	}
	return inside
}

// Centroid возвращает среднее арифметическое вершин
func Centroid(polygon []models.Coordinate) models.Coordinate {
	if len(polygon) == 0 {
		return models.Coordinate{}
	}
	var lat, lon float64
	for _, p := range polygon {
		lat += p.Latitude
		lon += p.Longitude
	}
	n := float64(len(polygon))
	return models.Coordinate{Latitude: lat / n, Longitude: lon / n}
}

// ToGeom преобразует кольцо вершин в полигон go-geom (X - долгота, Y - широта).
// Кольцо замыкается, если первая и последняя вершины различаются.
func ToGeom(polygon []models.Coordinate) (*geom.Polygon, error) {
	if len(polygon) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(polygon))
	}
	flat := make([]float64, 0, (len(polygon)+1)*2)
	for _, p := range polygon {
		flat = append(flat, p.Longitude, p.Latitude)
	}
	if len(polygon) > 0 && polygon[0] != polygon[len(polygon)-1] {
		flat = append(flat, polygon[0].Longitude, polygon[0].Latitude)
	}
	return geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)}).SetSRID(4326), nil
}

// FromGeom возвращает внешнее кольцо полигона без замыкающей вершины
func FromGeom(p *geom.Polygon) []models.Coordinate {
	if p == nil || p.NumLinearRings() == 0 {
		return nil
	}
	ring := p.LinearRing(0)
	coords := make([]models.Coordinate, 0, ring.NumCoords())
	for i := 0; i < ring.NumCoords(); i++ {
		c := ring.Coord(i)
		coords = append(coords, models.Coordinate{Latitude: c.Y(), Longitude: c.X()})
	}
	if len(coords) > 1 && coords[0] == coords[len(coords)-1] {
		coords = coords[:len(coords)-1]
	}
	return coords
}

// DistanceToPathKm возвращает расстояние от точки до ломаной в километрах.
// Точки проецируются в локальную равнопромежуточную систему вокруг p,
// что достаточно точно на масштабах пешего маршрута.
func DistanceToPathKm(p models.Coordinate, path []models.Coordinate) float64 {
	switch len(path) {
	case 0:
		return math.Inf(1)
	case 1:
		return Distance(p, path[0])
	}

	cosLat := math.Cos(toRadians(p.Latitude))
	project := func(c models.Coordinate) (float64, float64) {
		return (c.Longitude - p.Longitude) * cosLat * kmPerDegree, (c.Latitude - p.Latitude) * kmPerDegree
	}

	line := make([]float64, 0, len(path)*2)
	for _, c := range path {
		x, y := project(c)
		line = append(line, x, y)
	}
	return xy.DistanceFromPointToLineString(geom.XY, geom.Coord{0, 0}, line)
}
