package allocation

import "github.com/shenikar/shelter_dispatch_system/internal/models"

// VulnerabilityScore возвращает приоритет человека по возрасту; больше - срочнее
func VulnerabilityScore(age int) float64 {
	switch {
	case age >= 70:
		return 10
	case age <= 12:
		return 8
	case age >= 60:
		return 6
	case age <= 18:
		return 4
	default:
		return 2
	}
}

// FamilyScore - среднее арифметическое оценок членов семьи
func FamilyScore(members []models.Person) float64 {
	if len(members) == 0 {
		return 0
	}
	var sum float64
	for _, m := range members {
		sum += VulnerabilityScore(m.Age)
	}
	return sum / float64(len(members))
}
