package domain

import "time"

// TargetKind names the members of the assignment-target union.
type TargetKind string

const (
	TargetAttraction   TargetKind = "attraction"
	TargetServicePlace TargetKind = "service_place"
	TargetZones        TargetKind = "zones"
)

// AssignmentTarget is the closed set of things an employee can be assigned
// to for a shift: an attraction, a service place, or a list of zones for
// general-service duty. Consumers switch on the concrete type instead of
// runtime-casting an opaque value.
type AssignmentTarget interface {
	Kind() TargetKind
	assignmentTarget()
}

// AttractionTarget points at an attraction by ID.
type AttractionTarget struct {
	AttractionID string
}

func (AttractionTarget) Kind() TargetKind  { return TargetAttraction }
func (AttractionTarget) assignmentTarget() {}

// ServicePlaceTarget points at a service place by ID.
type ServicePlaceTarget struct {
	PlaceID string
}

func (ServicePlaceTarget) Kind() TargetKind  { return TargetServicePlace }
func (ServicePlaceTarget) assignmentTarget() {}

// ZoneListTarget names the zones a general-service employee covers.
type ZoneListTarget struct {
	Zones []string
}

func (ZoneListTarget) Kind() TargetKind  { return TargetZones }
func (ZoneListTarget) assignmentTarget() {}

// Assignment is one entry of the park-wide index: who works where on a given
// day and shift.
type Assignment struct {
	EmployeeID string
	Day        time.Time
	Shift      Shift
	Target     AssignmentTarget
}
