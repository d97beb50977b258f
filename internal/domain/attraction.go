package domain

import "time"

// AttractionKind distinguishes the two attraction families.
type AttractionKind string

const (
	AttractionMechanical AttractionKind = "mechanical"
	AttractionCultural   AttractionKind = "cultural"
)

// RiskLevel applies to mechanical attractions only.
type RiskLevel string

const (
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Attraction is a park facility visitors enter with a ticket. Mechanical
// attractions carry physical and health restrictions; cultural ones carry a
// minimum age. The attraction owns its availability window and its roster.
type Attraction struct {
	ID                 string
	Name               string
	Kind               AttractionKind
	Location           string
	ClimateRestriction string
	Exclusivity        ExclusivityTier
	RequiredStaff      int
	Capacity           int

	// mechanical only
	Risk               RiskLevel
	MinHeightCM        float64
	MaxHeightCM        float64
	MinWeightKG        float64
	MaxWeightKG        float64
	HealthRestrictions []string

	// cultural only
	MinAge int

	Window *AvailabilityWindow
	Roster *WorkplaceRoster
}

// NewAttraction returns an attraction with a fresh window and roster.
func NewAttraction(id, name string, kind AttractionKind, tier ExclusivityTier, requiredStaff int) *Attraction {
	return &Attraction{
		ID:            id,
		Name:          name,
		Kind:          kind,
		Exclusivity:   tier,
		RequiredStaff: requiredStaff,
		Window:        NewAvailabilityWindow(),
		Roster:        NewWorkplaceRoster(),
	}
}

// IsAvailable reports whether the attraction is open on the given day.
func (a *Attraction) IsAvailable(day time.Time) bool {
	if a.Window == nil {
		return !day.IsZero()
	}
	return a.Window.IsAvailable(day)
}

// HighRisk reports whether the attraction requires high-risk certified
// operators.
func (a *Attraction) HighRisk() bool {
	return a.Kind == AttractionMechanical && a.Risk == RiskHigh
}

// MediumRisk reports whether the attraction requires medium-risk certified
// operators.
func (a *Attraction) MediumRisk() bool {
	return a.Kind == AttractionMechanical && a.Risk == RiskMedium
}

// AdmitsVisitor checks the attraction's restrictions against a visitor:
// height, weight and health contraindications for mechanical attractions,
// minimum age for cultural ones. A nil visitor is never admitted.
func (a *Attraction) AdmitsVisitor(v *Visitor) bool {
	if v == nil {
		return false
	}
	switch a.Kind {
	case AttractionMechanical:
		if v.HeightCM < a.MinHeightCM || v.HeightCM > a.MaxHeightCM {
			return false
		}
		if v.WeightKG < a.MinWeightKG || v.WeightKG > a.MaxWeightKG {
			return false
		}
		for _, condition := range a.HealthRestrictions {
			if v.HasCondition(condition) {
				return false
			}
		}
		return true
	case AttractionCultural:
		return v.Age >= a.MinAge
	}
	return false
}
