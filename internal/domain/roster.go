package domain

import "time"

// WorkplaceRoster is the assignment table a facility keeps for itself:
// day -> shift -> set of employees. The roster holds non-owning references
// and never prunes entries. Park-wide uniqueness is not its concern; the
// staffing engine is the sole writer and enforces that invariant.
type WorkplaceRoster struct {
	assignments map[int64]map[Shift][]*Employee
}

// NewWorkplaceRoster returns an empty roster.
func NewWorkplaceRoster() *WorkplaceRoster {
	return &WorkplaceRoster{assignments: make(map[int64]map[Shift][]*Employee)}
}

// Assign records the employee for the day and shift. Assigning an employee
// already present is a success and leaves a single occurrence. Nil or invalid
// arguments report false.
func (r *WorkplaceRoster) Assign(e *Employee, day time.Time, shift Shift) bool {
	if e == nil || day.IsZero() || !shift.IsValid() {
		return false
	}

	idx := DayIndex(day)
	byShift, ok := r.assignments[idx]
	if !ok {
		byShift = make(map[Shift][]*Employee)
		r.assignments[idx] = byShift
	}

	for _, assigned := range byShift[shift] {
		if assigned.ID == e.ID {
			return true
		}
	}
	byShift[shift] = append(byShift[shift], e)
	return true
}

// EmployeesOn returns the employees assigned for the day and shift. The
// result is a copy and is empty, never nil, when nothing matches.
func (r *WorkplaceRoster) EmployeesOn(day time.Time, shift Shift) []*Employee {
	if day.IsZero() || !shift.IsValid() {
		return []*Employee{}
	}
	byShift, ok := r.assignments[DayIndex(day)]
	if !ok {
		return []*Employee{}
	}
	assigned := byShift[shift]
	out := make([]*Employee, len(assigned))
	copy(out, assigned)
	return out
}
