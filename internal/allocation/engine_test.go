package allocation

import (
	"testing"

	"github.com/shenikar/shelter_dispatch_system/internal/geo"
	"github.com/shenikar/shelter_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseLat = 32.0
	baseLon = 34.8
	// ~111 м по широте
	step = 0.001
)

func at(dLat, dLon float64) models.Coordinate {
	return models.Coordinate{Latitude: baseLat + dLat, Longitude: baseLon + dLon}
}

func shelter(id int64, capacity int, loc models.Coordinate) *models.Shelter {
	return &models.Shelter{ID: id, Capacity: capacity, Location: loc, Active: true}
}

func TestVulnerabilityScore(t *testing.T) {
	tests := []struct {
		age  int
		want float64
	}{
		{75, 10},
		{70, 10},
		{10, 8},
		{12, 8},
		{65, 6},
		{60, 6},
		{16, 4},
		{18, 4},
		{30, 2},
		{59, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VulnerabilityScore(tt.age), "age %d", tt.age)
	}
}

func TestFamilyScore(t *testing.T) {
	members := []models.Person{{Age: 75}, {Age: 30}}
	assert.Equal(t, 6.0, FamilyScore(members))
	assert.Equal(t, 0.0, FamilyScore(nil))
}

func TestMaxDistanceKm_Defaults(t *testing.T) {
	assert.InDelta(t, 0.6, DefaultSettings().MaxDistanceKm(), 1e-9)
	assert.InDelta(t, 0.6, Settings{}.MaxDistanceKm(), 1e-9)
	assert.InDelta(t, 1.5, Settings{TravelTimeMinutes: 3, WalkingSpeedKmPerMin: 0.5}.MaxDistanceKm(), 1e-9)
}

func TestRun_EndToEndTenPeopleTwoShelters(t *testing.T) {
	shelters := []*models.Shelter{
		shelter(1, 5, at(0, 0)),
		shelter(2, 5, at(2*step, 0)),
	}
	ages := []int{80, 5, 30, 40, 65, 16, 35, 72, 9, 50}
	people := make([]models.Person, len(ages))
	for i, age := range ages {
		people[i] = models.Person{ID: int64(i + 1), Age: age, Location: at(float64(i%3)*step, float64(i%2)*step)}
	}

	result, stats := RunAllocation(people, shelters, DefaultSettings(), nil)

	assert.Len(t, result.Assignments, 10)
	assert.Empty(t, result.Unassigned)
	assert.Equal(t, 10, stats.AssignedCount)
	assert.Equal(t, 0, stats.UnassignedCount)
	assert.Equal(t, 100.0, stats.AssignmentPercentage)
	assert.Equal(t, 10, stats.TotalCapacity)

	perShelter := map[int64]int{}
	for _, a := range result.Assignments {
		perShelter[a.ShelterID]++
	}
	assert.Equal(t, 5, perShelter[1])
	assert.Equal(t, 5, perShelter[2])
}

func TestRun_VulnerableWinsLastSlot(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 1, at(0, 0))}
	people := []models.Person{
		{ID: 1, Age: 30, Location: at(step, 0)},   // ближе
		{ID: 2, Age: 78, Location: at(3*step, 0)}, // дальше, но пожилой
	}

	result, _ := RunAllocation(people, shelters, DefaultSettings(), nil)

	require.Len(t, result.Assignments, 1)
	assert.Contains(t, result.Assignments, int64(2))
	assert.Equal(t, []int64{1}, result.Unassigned)
}

func TestRun_WithoutAgePriorityNearestWins(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 1, at(0, 0))}
	people := []models.Person{
		{ID: 1, Age: 30, Location: at(step, 0)},
		{ID: 2, Age: 78, Location: at(3*step, 0)},
	}
	settings := DefaultSettings()
	settings.AgePriority = false

	result, _ := RunAllocation(people, shelters, settings, nil)

	require.Len(t, result.Assignments, 1)
	assert.Contains(t, result.Assignments, int64(1))
}

func TestRun_ExactTieKeepsInputOrder(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 1, at(0, 0))}
	people := []models.Person{
		{ID: 10, Age: 30, Location: at(step, 0)},
		{ID: 20, Age: 30, Location: at(step, 0)},
	}

	result, _ := RunAllocation(people, shelters, DefaultSettings(), nil)

	assert.Contains(t, result.Assignments, int64(10))
	assert.NotContains(t, result.Assignments, int64(20))
}

func TestRun_RespectsMaxDistance(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 10, at(0, 0))}
	people := []models.Person{
		{ID: 1, Age: 30, Location: at(step, 0)},
		{ID: 2, Age: 80, Location: at(10*step, 0)}, // ~1.1 км
	}
	settings := DefaultSettings()

	result, _ := RunAllocation(people, shelters, settings, nil)

	assert.Contains(t, result.Assignments, int64(1))
	assert.NotContains(t, result.Assignments, int64(2))
	for id, a := range result.Assignments {
		var p models.Person
		for _, candidate := range people {
			if candidate.ID == id {
				p = candidate
			}
		}
		assert.LessOrEqual(t, a.DistanceKm, settings.MaxDistanceKm())
		assert.LessOrEqual(t, geo.Distance(p.Location, shelters[0].Location), settings.MaxDistanceKm())
	}
}

func TestRun_FamilyAllOrNothing(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 2, at(0, 0))}
	people := []models.Person{
		{ID: 1, Age: 40, Location: at(step, 0)},
		{ID: 2, Age: 8, Location: at(step, 0)},
		{ID: 3, Age: 6, Location: at(step, 0)},
		{ID: 4, Age: 30, Location: at(2*step, 0)},
	}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 2, 3}}}

	result, _ := RunAllocation(people, shelters, DefaultSettings(), families)

	for _, id := range []int64{1, 2, 3} {
		assert.NotContains(t, result.Assignments, id, "family member %d must not be placed alone", id)
	}
	assert.Contains(t, result.Assignments, int64(4))
}

func TestRun_FamilyPlacedTogetherAtNearestMeanShelter(t *testing.T) {
	shelters := []*models.Shelter{
		shelter(1, 10, at(4*step, 0)),
		shelter(2, 10, at(0, 0)),
	}
	people := []models.Person{
		{ID: 1, Age: 40, Location: at(step, 0)},
		{ID: 2, Age: 10, Location: at(0, 0)},
		{ID: 3, Age: 70, Location: at(2*step, 0)},
	}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 2, 3}}}

	result, stats := RunAllocation(people, shelters, DefaultSettings(), families)

	require.Len(t, result.Assignments, 3)
	for _, a := range result.Assignments {
		assert.Equal(t, int64(2), a.ShelterID)
	}
	assert.Equal(t, 3, stats.AssignedCount)
}

func TestRun_HigherScoreFamilyFirst(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 2, at(0, 0))}
	people := []models.Person{
		{ID: 1, Age: 30, Location: at(step, 0)},
		{ID: 2, Age: 35, Location: at(step, 0)},
		{ID: 3, Age: 80, Location: at(2*step, 0)},
		{ID: 4, Age: 75, Location: at(2*step, 0)},
	}
	families := []models.Family{
		{ID: 1, MemberIDs: []int64{1, 2}},
		{ID: 2, MemberIDs: []int64{3, 4}},
	}

	result, _ := RunAllocation(people, shelters, DefaultSettings(), families)

	assert.Contains(t, result.Assignments, int64(3))
	assert.Contains(t, result.Assignments, int64(4))
	assert.NotContains(t, result.Assignments, int64(1))
	assert.NotContains(t, result.Assignments, int64(2))
}

func TestRun_CapacityNeverExceeded(t *testing.T) {
	shelters := []*models.Shelter{
		shelter(1, 3, at(0, 0)),
		{ID: 2, Capacity: 4, Occupancy: 2, Location: at(step, step)},
	}
	var people []models.Person
	for i := 0; i < 20; i++ {
		people = append(people, models.Person{ID: int64(i + 1), Age: 20 + i*3, Location: at(float64(i%4)*step, 0)})
	}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 2}}}

	result, stats := RunAllocation(people, shelters, DefaultSettings(), families)

	counts := map[int64]int{}
	for _, a := range result.Assignments {
		counts[a.ShelterID]++
	}
	assert.LessOrEqual(t, counts[1], 3)
	assert.LessOrEqual(t, counts[2], 2)
	assert.Equal(t, 5, stats.AssignedCount)
	assert.Equal(t, 15, stats.UnassignedCount)
}

func TestRun_ReservationsGoThroughCapacity(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 5, at(0, 0))}
	people := []models.Person{
		{ID: 1, Age: 30, Location: at(step, 0)},
		{ID: 2, Age: 30, Location: at(step, 0)},
	}
	capacity := NewMemoryCapacity(shelters)

	NewEngine(DefaultSettings()).Run(people, shelters, nil, capacity)

	assert.Equal(t, 3, capacity.Remaining(1))
}

func TestRun_CustomDistance(t *testing.T) {
	shelters := []*models.Shelter{shelter(1, 1, at(0, 0)), shelter(2, 1, at(0, 0))}
	people := []models.Person{{ID: 1, Age: 30, Location: at(0, 0)}}
	walking := func(_ models.Person, s *models.Shelter) float64 {
		if s.ID == 1 {
			return 0.5
		}
		return 0.2
	}

	result := NewEngine(DefaultSettings()).WithDistance(walking).Run(people, shelters, nil, NewMemoryCapacity(shelters))

	assert.Equal(t, int64(2), result.Assignments[1].ShelterID)
	assert.InDelta(t, 0.2, result.Assignments[1].DistanceKm, 1e-9)
}

func TestRun_FamilyWithUnknownMemberSkipped(t *testing.T) {
	shelters := []*models.Shelter{shelter(10, 5, at(0, 0))}
	people := []models.Person{
		{ID: 1, Age: 40, Location: at(step, 0)},
		{ID: 2, Age: 8, Location: at(step, 0)},
		{ID: 4, Age: 30, Location: at(step, 0)},
	}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 2, 99}}}

	result, _ := RunAllocation(people, shelters, DefaultSettings(), families)

	assert.NotContains(t, result.Assignments, int64(1))
	assert.NotContains(t, result.Assignments, int64(2))
	assert.Contains(t, result.Assignments, int64(4))
	assert.ElementsMatch(t, []int64{1, 2}, result.Unassigned)
}

func TestRun_FamilyDuplicateMemberCountedOnce(t *testing.T) {
	shelters := []*models.Shelter{shelter(10, 1, at(0, 0))}
	people := []models.Person{{ID: 1, Age: 40, Location: at(step, 0)}}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 1}}}

	result, stats := RunAllocation(people, shelters, DefaultSettings(), families)

	require.Contains(t, result.Assignments, int64(1))
	assert.Equal(t, int64(10), result.Assignments[1].ShelterID)
	assert.Equal(t, 1, stats.AssignedCount)
}

func TestRun_SharedMemberKeepsFamiliesTogether(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     map[int64]int64
	}{
		{name: "joins shared member", capacity: 3, want: map[int64]int64{1: 10, 2: 10, 3: 10}},
		{name: "no room next to shared member", capacity: 2, want: map[int64]int64{1: 10, 2: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shelters := []*models.Shelter{
				shelter(10, tt.capacity, at(0, 0)),
				shelter(20, 5, at(3*step, 0)),
			}
			people := []models.Person{
				{ID: 1, Age: 80, Location: at(step, 0)},
				{ID: 2, Age: 30, Location: at(step, 0)},
				{ID: 3, Age: 30, Location: at(2*step, 0)},
			}
			families := []models.Family{
				{ID: 1, MemberIDs: []int64{1, 2}},
				{ID: 2, MemberIDs: []int64{2, 3}},
			}

			result, _ := RunAllocation(people, shelters, DefaultSettings(), families)

			got := make(map[int64]int64, len(result.Assignments))
			for id, a := range result.Assignments {
				got[id] = a.ShelterID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_FamilyFollowsMemberPlacedEarlier(t *testing.T) {
	shelters := []*models.Shelter{
		shelter(10, 5, at(0, 0)),
		shelter(20, 5, at(2*step, 0)),
	}
	people := []models.Person{{ID: 1, Age: 8, Location: at(2*step, 0)}}
	families := []models.Family{{ID: 1, MemberIDs: []int64{1, 2}}}

	result := NewEngine(DefaultSettings()).
		WithPlaced(map[int64]int64{2: 10}).
		Run(people, shelters, families, NewMemoryCapacity(shelters))

	require.Contains(t, result.Assignments, int64(1))
	assert.Equal(t, int64(10), result.Assignments[1].ShelterID)
}
