package domain

import "time"

// Show is a scheduled performance. Unlike attractions, a show is only
// available on days that carry a programmed performance, further limited by
// an optional season.
type Show struct {
	ID                 string
	Name               string
	Duration           string
	Schedule           string
	Capacity           int
	ClimateRestriction string
	Seasonal           bool
	SeasonStart        time.Time
	SeasonEnd          time.Time

	performances []time.Time
}

// AddPerformance programs a performance for the given day. A day that already
// carries one is left untouched.
func (s *Show) AddPerformance(day time.Time) bool {
	if day.IsZero() {
		return false
	}
	for _, p := range s.performances {
		if SameDay(p, day) {
			return true
		}
	}
	s.performances = append(s.performances, day)
	return true
}

// CancelPerformance removes the performance on the given day, reporting
// whether one existed.
func (s *Show) CancelPerformance(day time.Time) bool {
	if day.IsZero() {
		return false
	}
	for i, p := range s.performances {
		if SameDay(p, day) {
			s.performances = append(s.performances[:i], s.performances[i+1:]...)
			return true
		}
	}
	return false
}

// IsAvailable reports whether the show runs on the given day: inside the
// season when seasonal, and with a performance programmed for that day.
func (s *Show) IsAvailable(day time.Time) bool {
	if day.IsZero() {
		return false
	}
	if s.Seasonal && (day.Before(s.SeasonStart) || day.After(s.SeasonEnd)) {
		return false
	}
	for _, p := range s.performances {
		if SameDay(p, day) {
			return true
		}
	}
	return false
}

// Performances returns a copy of the programmed performance days.
func (s *Show) Performances() []time.Time {
	out := make([]time.Time, len(s.performances))
	copy(out, s.performances)
	return out
}

// SetPerformances replaces the programmed days, deduplicating by calendar
// day. Used when rehydrating a show from storage.
func (s *Show) SetPerformances(days []time.Time) {
	s.performances = nil
	for _, d := range days {
		s.AddPerformance(d)
	}
}
