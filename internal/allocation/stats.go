package allocation

import (
	"errors"

	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

var errInsufficientCapacity = errors.New("allocation: insufficient shelter capacity")

// Statistics - сводка по прогону распределения
type Statistics struct {
	TotalPeople          int     `json:"total_people"`
	AssignedCount        int     `json:"assigned_count"`
	UnassignedCount      int     `json:"unassigned_count"`
	AssignmentPercentage float64 `json:"assignment_percentage"`
	TotalCapacity        int     `json:"total_capacity"`
	AverageDistance      float64 `json:"average_distance"`
	MinDistance          float64 `json:"min_distance"`
	MaxDistance          float64 `json:"max_distance"`
}

// ComputeStatistics считает показатели только по распределенным парам.
// Если назначений нет, MinDistance равен 0.
func ComputeStatistics(people []models.Person, shelters []*models.Shelter, result Result) Statistics {
	stats := Statistics{TotalPeople: len(people)}
	for _, s := range shelters {
		stats.TotalCapacity += s.Capacity
	}

	first := true
	var sum float64
	for _, p := range people {
		a, ok := result.Assignments[p.ID]
		if !ok {
			continue
		}
		stats.AssignedCount++
		sum += a.DistanceKm
		if first || a.DistanceKm < stats.MinDistance {
			stats.MinDistance = a.DistanceKm
		}
		if first || a.DistanceKm > stats.MaxDistance {
			stats.MaxDistance = a.DistanceKm
		}
		first = false
	}

	stats.UnassignedCount = stats.TotalPeople - stats.AssignedCount
	if stats.AssignedCount > 0 {
		stats.AverageDistance = sum / float64(stats.AssignedCount)
	}
	if stats.TotalPeople > 0 {
		stats.AssignmentPercentage = float64(stats.AssignedCount) / float64(stats.TotalPeople) * 100
	}
	return stats
}
