package domain

import (
	"testing"
	"time"
)

func TestShow_Performances(t *testing.T) {
	t.Parallel()

	d := day(2025, time.July, 10)
	show := &Show{ID: "show-1", Name: "Parade"}

	if show.IsAvailable(d) {
		t.Fatalf("expected no availability without performances")
	}

	if !show.AddPerformance(d) {
		t.Fatalf("expected add to succeed")
	}
	if !show.AddPerformance(d.Add(3 * time.Hour)) {
		t.Fatalf("expected same-day add to succeed")
	}
	if got := len(show.Performances()); got != 1 {
		t.Fatalf("expected same-day performances to collapse, got %d", got)
	}
	if !show.IsAvailable(d.Add(20 * time.Hour)) {
		t.Fatalf("expected availability on the performance day")
	}
	if show.IsAvailable(d.Add(24 * time.Hour)) {
		t.Fatalf("expected no availability the day after")
	}

	if !show.CancelPerformance(d) {
		t.Fatalf("expected cancel to report the removal")
	}
	if show.CancelPerformance(d) {
		t.Fatalf("expected a second cancel to report absence")
	}
	if show.IsAvailable(d) {
		t.Fatalf("expected no availability after the cancellation")
	}
}

func TestShow_Seasonal(t *testing.T) {
	t.Parallel()

	show := &Show{
		ID:          "show-1",
		Name:        "Summer Splash",
		Seasonal:    true,
		SeasonStart: day(2025, time.June, 1),
		SeasonEnd:   day(2025, time.August, 31),
	}

	inSeason := day(2025, time.July, 1)
	outOfSeason := day(2025, time.September, 10)
	show.AddPerformance(inSeason)
	show.AddPerformance(outOfSeason)

	if !show.IsAvailable(inSeason) {
		t.Fatalf("expected the in-season performance to be available")
	}
	if show.IsAvailable(outOfSeason) {
		t.Fatalf("expected the out-of-season performance to be unavailable")
	}
}
