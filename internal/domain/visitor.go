package domain

import "strings"

// Visitor is a park guest checked against attraction restrictions.
type Visitor struct {
	ID               string
	Name             string
	Age              int
	HeightCM         float64
	WeightKG         float64
	HealthConditions []string
}

// HasCondition reports whether the visitor declared the given health
// condition. Matching is case-insensitive.
func (v *Visitor) HasCondition(condition string) bool {
	for _, c := range v.HealthConditions {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(condition)) {
			return true
		}
	}
	return false
}
