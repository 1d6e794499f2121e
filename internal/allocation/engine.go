// Package allocation распределяет людей и семьи по убежищам.
//
// Алгоритм детерминированный и жадный: сначала семьи целиком, затем
// оставшиеся люди по одному. Возврата к принятым решениям нет.
package allocation

import (
	"sort"

	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

const (
	DefaultTravelTimeMinutes    = 1.0
	DefaultWalkingSpeedKmPerMin = 0.6
)

// Capacity - источник свободных мест, изменяемый по ходу прогона
type Capacity interface {
	Remaining(shelterID int64) int
	Reserve(shelterID int64, n int) error
}

// DistanceFunc возвращает расстояние от человека до убежища в километрах
type DistanceFunc func(p models.Person, s *models.Shelter) float64

// HaversineDistance - расстояние по большому кругу
func HaversineDistance(p models.Person, s *models.Shelter) float64 {
	return geo.Distance(p.Location, s.Location)
}

// Settings - параметры приоритета и допустимой дальности
type Settings struct {
	AgePriority          bool    `json:"age_priority"`
	TravelTimeMinutes    float64 `json:"travel_time_minutes"`
	WalkingSpeedKmPerMin float64 `json:"walking_speed_km_per_min"`
}

func DefaultSettings() Settings {
	return Settings{
		AgePriority:          true,
		TravelTimeMinutes:    DefaultTravelTimeMinutes,
		WalkingSpeedKmPerMin: DefaultWalkingSpeedKmPerMin,
	}
}

// MaxDistanceKm - предельная пешая дистанция; незаданные значения заменяются умолчаниями
func (s Settings) MaxDistanceKm() float64 {
	minutes := s.TravelTimeMinutes
	if minutes <= 0 {
		minutes = DefaultTravelTimeMinutes
	}
	speed := s.WalkingSpeedKmPerMin
	if speed <= 0 {
		speed = DefaultWalkingSpeedKmPerMin
	}
	return minutes * speed
}

// Assignment - назначение человека в убежище
type Assignment struct {
	ShelterID  int64   `json:"shelter_id"`
	DistanceKm float64 `json:"distance_km"`
}

// Result - итог прогона; люди без записи в Assignments не распределены
type Result struct {
	Assignments map[int64]Assignment `json:"assignments"`
	Unassigned  []int64              `json:"unassigned"`
}

type Engine struct {
	settings Settings
	distance DistanceFunc
	placed   map[int64]int64
}

func NewEngine(settings Settings) *Engine {
	return &Engine{settings: settings, distance: HaversineDistance}
}

// WithPlaced задает людей, уже размещенных вне прогона (пользователь -> убежище).
// Оставшиеся члены их семей направляются в то же убежище.
func (e *Engine) WithPlaced(placed map[int64]int64) *Engine {
	e.placed = placed
	return e
}

// WithDistance подменяет функцию расстояния
func (e *Engine) WithDistance(fn DistanceFunc) *Engine {
	if fn != nil {
		e.distance = fn
	}
	return e
}

type candidate struct {
	person   int
	shelter  int
	score    float64
	distance float64
}

// Run распределяет людей по убежищам, резервируя места через capacity.
// Резервирования сразу учитываются следующими решениями того же прогона.
func (e *Engine) Run(people []models.Person, shelters []*models.Shelter, families []models.Family, capacity Capacity) Result {
	result := Result{Assignments: make(map[int64]Assignment)}
	maxDistance := e.settings.MaxDistanceKm()

	index := make(map[int64]int, len(people))
	for i, p := range people {
		index[p.ID] = i
	}

	// Члены семей, не получивших убежище целиком, не распределяются поодиночке
	excluded := e.assignFamilies(people, index, shelters, families, capacity, maxDistance, result.Assignments)
	e.assignIndividuals(people, shelters, capacity, maxDistance, result.Assignments, excluded)

	for _, p := range people {
		if _, ok := result.Assignments[p.ID]; !ok {
			result.Unassigned = append(result.Unassigned, p.ID)
		}
	}
	return result
}

type familyGroup struct {
	members []models.Person
	// anchors - убежища уже размещенных вне прогона членов семьи
	anchors map[int64]bool
	score   float64
}

// buildFamilies собирает семьи по уникальным участникам. Семья с неизвестным
// участником пропускается целиком, а ее известные члены исключаются из
// одиночного распределения.
func (e *Engine) buildFamilies(people []models.Person, index map[int64]int, families []models.Family,
	excluded map[int64]bool) []familyGroup {
	groups := make([]familyGroup, 0, len(families))
	for _, f := range families {
		seen := make(map[int64]bool, len(f.MemberIDs))
		var members []models.Person
		anchors := make(map[int64]bool)
		unknown := false
		for _, id := range f.MemberIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			if i, ok := index[id]; ok {
				members = append(members, people[i])
				continue
			}
			if shelterID, ok := e.placed[id]; ok {
				anchors[shelterID] = true
				continue
			}
			unknown = true
		}
		if unknown {
			markExcluded(excluded, members)
			continue
		}
		if len(members) == 0 {
			continue
		}
		groups = append(groups, familyGroup{members: members, anchors: anchors, score: FamilyScore(members)})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].score > groups[j].score
	})
	return groups
}

func (e *Engine) assignFamilies(people []models.Person, index map[int64]int, shelters []*models.Shelter,
	families []models.Family, capacity Capacity, maxDistance float64, assigned map[int64]Assignment) map[int64]bool {
	excluded := make(map[int64]bool)
	groups := e.buildFamilies(people, index, families, excluded)

	for _, g := range groups {
		// Члены, уже размещенные другой семьей этого прогона, задают убежище для остальных
		anchors := make(map[int64]bool, len(g.anchors))
		for id := range g.anchors {
			anchors[id] = true
		}
		members := make([]models.Person, 0, len(g.members))
		for _, m := range g.members {
			if a, done := assigned[m.ID]; done {
				anchors[a.ShelterID] = true
				continue
			}
			members = append(members, m)
		}
		if len(members) == 0 {
			continue
		}
		if len(anchors) > 1 {
			markExcluded(excluded, members)
			continue
		}

		best := -1
		bestMean := 0.0
		for si, s := range shelters {
			if len(anchors) == 1 && !anchors[s.ID] {
				continue
			}
			if capacity.Remaining(s.ID) < len(members) {
				continue
			}
			var sum float64
			for _, m := range members {
				sum += e.distance(m, s)
			}
			mean := sum / float64(len(members))
			if mean > maxDistance {
				continue
			}
			if best == -1 || mean < bestMean {
				best, bestMean = si, mean
			}
		}
		if best == -1 {
			markExcluded(excluded, members)
			continue
		}

		shelter := shelters[best]
		if err := capacity.Reserve(shelter.ID, len(members)); err != nil {
			markExcluded(excluded, members)
			continue
		}
		for _, m := range members {
			assigned[m.ID] = Assignment{ShelterID: shelter.ID, DistanceKm: e.distance(m, shelter)}
		}
	}
	return excluded
}

func markExcluded(excluded map[int64]bool, members []models.Person) {
	for _, m := range members {
		excluded[m.ID] = true
	}
}

func (e *Engine) assignIndividuals(people []models.Person, shelters []*models.Shelter, capacity Capacity,
	maxDistance float64, assigned map[int64]Assignment, excluded map[int64]bool) {
	var candidates []candidate
	for pi, p := range people {
		if _, done := assigned[p.ID]; done || excluded[p.ID] {
			continue
		}
		score := 0.0
		if e.settings.AgePriority {
			score = VulnerabilityScore(p.Age)
		}
		for si, s := range shelters {
			if capacity.Remaining(s.ID) <= 0 {
				continue
			}
			d := e.distance(p, s)
			if d > maxDistance {
				continue
			}
			candidates = append(candidates, candidate{person: pi, shelter: si, score: score, distance: d})
		}
	}

	agePriority := e.settings.AgePriority
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if agePriority && a.score != b.score {
			return a.score > b.score
		}
		return a.distance < b.distance
	})

	for _, c := range candidates {
		p := people[c.person]
		s := shelters[c.shelter]
		if _, done := assigned[p.ID]; done {
			continue
		}
		if capacity.Remaining(s.ID) <= 0 {
			continue
		}
		if err := capacity.Reserve(s.ID, 1); err != nil {
			continue
		}
		assigned[p.ID] = Assignment{ShelterID: s.ID, DistanceKm: c.distance}
	}
}

// RunAllocation выполняет автономный прогон по свободным местам переданных убежищ
func RunAllocation(people []models.Person, shelters []*models.Shelter, settings Settings, families []models.Family) (Result, Statistics) {
	result := NewEngine(settings).Run(people, shelters, families, NewMemoryCapacity(shelters))
	return result, ComputeStatistics(people, shelters, result)
}

// MemoryCapacity - вместимость в памяти для автономных прогонов
type MemoryCapacity struct {
	remaining map[int64]int
}

// NewMemoryCapacity берет свободные места из переданных убежищ
func NewMemoryCapacity(shelters []*models.Shelter) *MemoryCapacity {
	c := &MemoryCapacity{remaining: make(map[int64]int, len(shelters))}
	for _, s := range shelters {
		c.remaining[s.ID] = s.Remaining()
	}
	return c
}

func (c *MemoryCapacity) Remaining(shelterID int64) int {
	return c.remaining[shelterID]
}

func (c *MemoryCapacity) Reserve(shelterID int64, n int) error {
	if c.remaining[shelterID] < n {
		return errInsufficientCapacity
	}
	c.remaining[shelterID] -= n
	return nil
}
