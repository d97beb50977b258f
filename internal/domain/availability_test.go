package domain

import (
	"testing"
	"time"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestAvailabilityWindow_ScheduleMaintenance(t *testing.T) {
	t.Parallel()

	t.Run("blacks out the inclusive range", func(t *testing.T) {
		w := NewAvailabilityWindow()
		start := day(2025, time.March, 1)
		end := start.Add(7 * 24 * time.Hour)

		if err := w.ScheduleMaintenance(start, end); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for d := 0; d <= 7; d++ {
			probe := start.Add(time.Duration(d) * 24 * time.Hour).Add(13 * time.Hour)
			if w.IsAvailable(probe) {
				t.Fatalf("expected day +%d to be blacked out", d)
			}
		}
		if !w.IsAvailable(start.Add(8 * 24 * time.Hour)) {
			t.Fatalf("expected day +8 to stay available")
		}
		if !w.IsAvailable(start.Add(-24 * time.Hour)) {
			t.Fatalf("expected day -1 to stay available")
		}
	})

	t.Run("single day range", func(t *testing.T) {
		w := NewAvailabilityWindow()
		d := day(2025, time.March, 1)
		if err := w.ScheduleMaintenance(d, d); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if w.IsAvailable(d) {
			t.Fatalf("expected the single maintenance day to be blacked out")
		}
		if len(w.BlackoutDays()) != 1 {
			t.Fatalf("expected 1 blackout day, got %d", len(w.BlackoutDays()))
		}
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		w := NewAvailabilityWindow()
		start := day(2025, time.March, 10)
		if err := w.ScheduleMaintenance(start, start.Add(-24*time.Hour)); err != ErrInvalidDateRange {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
		if len(w.BlackoutDays()) != 0 {
			t.Fatalf("expected no blackout days after rejected range")
		}
	})

	t.Run("zero bounds are rejected", func(t *testing.T) {
		w := NewAvailabilityWindow()
		if err := w.ScheduleMaintenance(time.Time{}, day(2025, time.March, 1)); err != ErrNilArgument {
			t.Fatalf("expected ErrNilArgument, got %v", err)
		}
	})
}

func TestAvailabilityWindow_Seasonal(t *testing.T) {
	t.Parallel()

	start := day(2025, time.June, 1)
	end := day(2025, time.August, 31)
	w := NewSeasonalWindow(start, end)

	if !w.IsAvailable(start) || !w.IsAvailable(end) {
		t.Fatalf("expected season bounds to be available")
	}
	if !w.IsAvailable(day(2025, time.July, 15)) {
		t.Fatalf("expected mid-season day to be available")
	}
	if w.IsAvailable(start.Add(-time.Hour)) {
		t.Fatalf("expected pre-season day to be unavailable")
	}
	if w.IsAvailable(end.Add(25 * time.Hour)) {
		t.Fatalf("expected post-season day to be unavailable")
	}

	if err := w.ScheduleMaintenance(day(2025, time.July, 4), day(2025, time.July, 4)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if w.IsAvailable(day(2025, time.July, 4)) {
		t.Fatalf("expected blackout to beat the season")
	}
}

func TestAvailabilityWindow_SetSeason(t *testing.T) {
	t.Parallel()

	w := NewAvailabilityWindow()
	if err := w.SetSeason(true, day(2025, time.June, 2), day(2025, time.June, 1)); err != ErrInvalidDateRange {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	if err := w.SetSeason(true, time.Time{}, day(2025, time.June, 1)); err != ErrNilArgument {
		t.Fatalf("expected ErrNilArgument, got %v", err)
	}

	if err := w.SetSeason(true, day(2025, time.June, 1), day(2025, time.June, 30)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if w.IsAvailable(day(2025, time.May, 31)) {
		t.Fatalf("expected out-of-season day to be unavailable")
	}

	if err := w.SetSeason(false, time.Time{}, time.Time{}); err != nil {
		t.Fatalf("expected no error turning season off, got %v", err)
	}
	if !w.IsAvailable(day(2025, time.May, 31)) {
		t.Fatalf("expected every day available once the season is off")
	}
}

func TestAvailabilityWindow_ZeroDay(t *testing.T) {
	t.Parallel()

	if NewAvailabilityWindow().IsAvailable(time.Time{}) {
		t.Fatalf("expected the zero day to be unavailable")
	}
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	night := time.Date(2025, time.March, 1, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)

	if !SameDay(morning, night) {
		t.Fatalf("expected same calendar day to match")
	}
	if SameDay(night, nextDay) {
		t.Fatalf("expected adjacent days to differ")
	}
	if DayIndex(nextDay) != DayIndex(morning)+1 {
		t.Fatalf("expected consecutive day indexes, got %d and %d", DayIndex(morning), DayIndex(nextDay))
	}
}
