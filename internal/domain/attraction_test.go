package domain

import (
	"testing"
	"time"
)

func TestAttraction_AdmitsVisitor(t *testing.T) {
	t.Parallel()

	mechanical := &Attraction{
		ID:                 "attr-1",
		Kind:               AttractionMechanical,
		MinHeightCM:        120,
		MaxHeightCM:        200,
		MinWeightKG:        30,
		MaxWeightKG:        120,
		HealthRestrictions: []string{"vertigo", "heart condition"},
	}

	tests := []struct {
		name    string
		visitor *Visitor
		want    bool
	}{
		{"fits all limits", &Visitor{HeightCM: 150, WeightKG: 60}, true},
		{"too short", &Visitor{HeightCM: 110, WeightKG: 60}, false},
		{"too tall", &Visitor{HeightCM: 210, WeightKG: 60}, false},
		{"too light", &Visitor{HeightCM: 150, WeightKG: 25}, false},
		{"too heavy", &Visitor{HeightCM: 150, WeightKG: 130}, false},
		{"contraindicated", &Visitor{HeightCM: 150, WeightKG: 60, HealthConditions: []string{"Vertigo"}}, false},
		{"nil visitor", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mechanical.AdmitsVisitor(tt.visitor); got != tt.want {
				t.Fatalf("AdmitsVisitor = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("cultural checks age only", func(t *testing.T) {
		cultural := &Attraction{ID: "attr-2", Kind: AttractionCultural, MinAge: 12}
		if cultural.AdmitsVisitor(&Visitor{Age: 11}) {
			t.Fatalf("expected under-age visitor to be rejected")
		}
		if !cultural.AdmitsVisitor(&Visitor{Age: 12, HeightCM: 10}) {
			t.Fatalf("expected age to be the only cultural restriction")
		}
	})
}

func TestAttraction_Risk(t *testing.T) {
	t.Parallel()

	high := &Attraction{Kind: AttractionMechanical, Risk: RiskHigh}
	medium := &Attraction{Kind: AttractionMechanical, Risk: RiskMedium}
	cultural := &Attraction{Kind: AttractionCultural, Risk: RiskHigh}

	if !high.HighRisk() || high.MediumRisk() {
		t.Fatalf("expected high risk classification")
	}
	if !medium.MediumRisk() || medium.HighRisk() {
		t.Fatalf("expected medium risk classification")
	}
	if cultural.HighRisk() {
		t.Fatalf("expected cultural attractions to carry no mechanical risk")
	}
}

func TestAttraction_IsAvailable(t *testing.T) {
	t.Parallel()

	a := NewAttraction("attr-1", "Mine Train", AttractionMechanical, TierGold, 2)
	d := day(2025, time.April, 1)

	if !a.IsAvailable(d) {
		t.Fatalf("expected a fresh attraction to be available")
	}
	if err := a.Window.ScheduleMaintenance(d, d); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.IsAvailable(d) {
		t.Fatalf("expected the maintenance day to be unavailable")
	}

	windowless := &Attraction{ID: "attr-2"}
	if !windowless.IsAvailable(d) {
		t.Fatalf("expected a windowless attraction to be available")
	}
	if windowless.IsAvailable(time.Time{}) {
		t.Fatalf("expected the zero day to be unavailable")
	}
}

func TestEmployee_CertifiedOn(t *testing.T) {
	t.Parallel()

	d := day(2025, time.May, 10)

	uncertified := &Employee{ID: "e1"}
	if uncertified.CertifiedOn(d) {
		t.Fatalf("expected an uncertified employee to fail")
	}

	openEnded := &Employee{ID: "e2", Certified: true}
	if !openEnded.CertifiedOn(d) {
		t.Fatalf("expected an open-ended certification to hold")
	}

	window := &Employee{
		ID:             "e3",
		Certified:      true,
		CertifiedFrom:  day(2025, time.May, 1),
		CertifiedUntil: day(2025, time.May, 31),
	}
	if !window.CertifiedOn(d) {
		t.Fatalf("expected certification inside the window")
	}
	if window.CertifiedOn(day(2025, time.June, 1)) {
		t.Fatalf("expected certification expired outside the window")
	}
	if window.CertifiedOn(time.Time{}) {
		t.Fatalf("expected the zero day to fail a bounded window")
	}
}
