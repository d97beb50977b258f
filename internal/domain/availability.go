package domain

import "time"

// AvailabilityWindow answers "is this facility open on day D". It merges an
// optional seasonal range with blackout days accumulated by maintenance.
// Blackout days only grow; there is no removal.
type AvailabilityWindow struct {
	seasonal bool
	start    time.Time
	end      time.Time
	blackout []time.Time
}

// NewAvailabilityWindow returns a window without a seasonal range: every day
// is available except blackout days.
func NewAvailabilityWindow() *AvailabilityWindow {
	return &AvailabilityWindow{}
}

// NewSeasonalWindow returns a window restricted to the inclusive range
// [start, end].
func NewSeasonalWindow(start, end time.Time) *AvailabilityWindow {
	return &AvailabilityWindow{seasonal: true, start: start, end: end}
}

// RestoreWindow rebuilds a window from stored state. Used when rehydrating
// an entity from a storage backend.
func RestoreWindow(seasonal bool, start, end time.Time, blackout []time.Time) *AvailabilityWindow {
	w := &AvailabilityWindow{seasonal: seasonal, start: start, end: end}
	w.blackout = make([]time.Time, len(blackout))
	copy(w.blackout, blackout)
	return w
}

// SetSeason turns the seasonal restriction on or off. When turning it on the
// bounds must be present and ordered.
func (w *AvailabilityWindow) SetSeason(seasonal bool, start, end time.Time) error {
	if seasonal {
		if start.IsZero() || end.IsZero() {
			return ErrNilArgument
		}
		if start.After(end) {
			return ErrInvalidDateRange
		}
		w.start = start
		w.end = end
	}
	w.seasonal = seasonal
	return nil
}

// ScheduleMaintenance appends every calendar day in the inclusive range
// [start, end] to the blackout set. A start after end is rejected instead of
// silently producing an empty range.
func (w *AvailabilityWindow) ScheduleMaintenance(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrNilArgument
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	for d := start; !d.After(end); d = d.Add(24 * time.Hour) {
		w.blackout = append(w.blackout, d)
	}
	return nil
}

// IsAvailable reports whether the window accepts the given day. Blackout days
// always lose; the seasonal range applies only when the window is seasonal.
// A zero day is never available.
func (w *AvailabilityWindow) IsAvailable(day time.Time) bool {
	if day.IsZero() {
		return false
	}
	for _, b := range w.blackout {
		if SameDay(b, day) {
			return false
		}
	}
	if w.seasonal {
		return !day.Before(w.start) && !day.After(w.end)
	}
	return true
}

// Seasonal reports whether the window carries a seasonal range.
func (w *AvailabilityWindow) Seasonal() bool {
	return w.seasonal
}

// SeasonRange returns the seasonal bounds. Zero values when not seasonal.
func (w *AvailabilityWindow) SeasonRange() (start, end time.Time) {
	return w.start, w.end
}

// BlackoutDays returns a copy of the accumulated blackout days.
func (w *AvailabilityWindow) BlackoutDays() []time.Time {
	out := make([]time.Time, len(w.blackout))
	copy(out, w.blackout)
	return out
}
