package domain

import (
	"time"

	"github.com/cimillas/park-operations/internal/clock"
)

// TicketStatus tracks the commercial state of a ticket.
type TicketStatus string

const (
	TicketStatusActive   TicketStatus = "active"
	TicketStatusExpired  TicketStatus = "expired"
	TicketStatusRefunded TicketStatus = "refunded"
)

// AccessChecker is the entry contract every ticket variant implements.
// SingleAttraction tickets substitute identity comparison for the tier
// check, so callers must not assume the tier rule applies to every variant.
type AccessChecker interface {
	CanAccess(a *Attraction) bool
	MarkUsed()
	IsUsed() bool
}

// Ticket carries the fields shared by every variant.
type Ticket struct {
	ID               string
	Name             string
	Count            int
	Exclusivity      ExclusivityTier
	PurchaseDate     time.Time
	Status           TicketStatus
	Channel          string
	EmployeeDiscount bool
	Used             bool
}

// MarkUsed is a one-way transition; there is no way back.
func (t *Ticket) MarkUsed() {
	t.Used = true
}

func (t *Ticket) IsUsed() bool {
	return t.Used
}

// BasicTicket grants entry by tier alone, with no date restriction.
type BasicTicket struct {
	Ticket
	Category string
}

func (t *BasicTicket) CanAccess(a *Attraction) bool {
	if a == nil {
		return false
	}
	return t.Exclusivity.HasAccess(a.Exclusivity)
}

// SeasonalTicket grants entry by tier, but only while the current day falls
// inside its validity range. The clock is injectable; a nil clock falls back
// to the system time.
type SeasonalTicket struct {
	Ticket
	ValidFrom  time.Time
	ValidTo    time.Time
	SeasonType string
	Category   string
	Clock      clock.Clock
}

// WithinRange reports whether the day falls inside [ValidFrom, ValidTo].
// Missing bounds or a zero day report false.
func (t *SeasonalTicket) WithinRange(day time.Time) bool {
	if day.IsZero() || t.ValidFrom.IsZero() || t.ValidTo.IsZero() {
		return false
	}
	return !day.Before(t.ValidFrom) && !day.After(t.ValidTo)
}

func (t *SeasonalTicket) CanAccess(a *Attraction) bool {
	if a == nil {
		return false
	}
	if !t.WithinRange(t.now()) {
		return false
	}
	return t.Exclusivity.HasAccess(a.Exclusivity)
}

func (t *SeasonalTicket) now() time.Time {
	if t.Clock != nil {
		return t.Clock.Now()
	}
	return time.Now().UTC()
}

// SingleAttractionTicket is bound to exactly one attraction and is invalid
// once used. It holds a shared reference to the attraction; entry requires
// an identity match, not a tier match.
type SingleAttractionTicket struct {
	Ticket
	Attraction *Attraction
}

func (t *SingleAttractionTicket) CanAccess(a *Attraction) bool {
	if a == nil || t.Attraction == nil {
		return false
	}
	return t.Attraction.ID == a.ID && !t.Used
}

// FastPass is a one-time token bound to a ticket and a single day.
type FastPass struct {
	ID       string
	TicketID string
	ValidDay time.Time
	Used     bool
}

// IsValid reports whether the pass can still be consumed on the given day.
// A consumed pass is permanently invalid.
func (f *FastPass) IsValid(day time.Time) bool {
	if f.Used || day.IsZero() || f.ValidDay.IsZero() {
		return false
	}
	return SameDay(day, f.ValidDay)
}

// MarkUsed consumes the pass.
func (f *FastPass) MarkUsed() {
	f.Used = true
}
