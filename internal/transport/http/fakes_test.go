package http

import (
	"context"
	"time"

	"github.com/cimillas/park-operations/internal/app"
	"github.com/cimillas/park-operations/internal/domain"
)

// fakeStaffing answers every StaffingService call with canned values.
type fakeStaffing struct {
	err      error
	released bool
	meets    bool
	assigned bool
	target   domain.AssignmentTarget
	onShift  []string

	lastEmployeeID string
	lastTargetID   string
	lastZones      []string
	lastDay        time.Time
	lastShift      domain.Shift
}

func (f *fakeStaffing) record(employeeID, targetID string, day time.Time, shift domain.Shift) {
	f.lastEmployeeID = employeeID
	f.lastTargetID = targetID
	f.lastDay = day
	f.lastShift = shift
}

func (f *fakeStaffing) AssignToAttraction(_ context.Context, employeeID, attractionID string, day time.Time, shift domain.Shift) error {
	f.record(employeeID, attractionID, day, shift)
	return f.err
}

func (f *fakeStaffing) AssignCookToCafeteria(_ context.Context, cookID, cafeteriaID string, day time.Time, shift domain.Shift) error {
	f.record(cookID, cafeteriaID, day, shift)
	return f.err
}

func (f *fakeStaffing) AssignCashierToServicePlace(_ context.Context, cashierID, placeID string, day time.Time, shift domain.Shift) error {
	f.record(cashierID, placeID, day, shift)
	return f.err
}

func (f *fakeStaffing) AssignToGeneralService(_ context.Context, employeeID string, zones []string, day time.Time, shift domain.Shift) error {
	f.record(employeeID, "", day, shift)
	f.lastZones = zones
	return f.err
}

func (f *fakeStaffing) ReleaseAssignment(_ context.Context, employeeID string, day time.Time, shift domain.Shift) (bool, error) {
	f.record(employeeID, "", day, shift)
	return f.released, f.err
}

func (f *fakeStaffing) MeetsMinimumStaffing(_ context.Context, attractionID string, day time.Time, shift domain.Shift) (bool, error) {
	f.record("", attractionID, day, shift)
	return f.meets, f.err
}

func (f *fakeStaffing) IsAssigned(context.Context, string, time.Time, domain.Shift) (bool, error) {
	return f.assigned, f.err
}

func (f *fakeStaffing) EmployeesOnShift(context.Context, time.Time, domain.Shift) ([]string, error) {
	return f.onShift, f.err
}

func (f *fakeStaffing) AssignmentTargetOf(context.Context, string, time.Time, domain.Shift) (domain.AssignmentTarget, error) {
	return f.target, f.err
}

// fakeAdmin serves the admin endpoints with canned state.
type fakeAdmin struct {
	err        error
	employees  []*domain.Employee
	attraction *domain.Attraction
	available  bool
	cancelled  bool
}

func (f *fakeAdmin) AddEmployee(_ context.Context, e *domain.Employee) error {
	if f.err != nil {
		return f.err
	}
	f.employees = append(f.employees, e)
	return nil
}

func (f *fakeAdmin) UpdateEmployee(context.Context, *domain.Employee) error { return f.err }
func (f *fakeAdmin) RemoveEmployee(context.Context, string) error { return f.err }

func (f *fakeAdmin) ListEmployees(context.Context) ([]*domain.Employee, error) {
	return f.employees, f.err
}

func (f *fakeAdmin) AddAttraction(context.Context, *domain.Attraction) error { return f.err }
func (f *fakeAdmin) RemoveAttraction(context.Context, string) error          { return f.err }

func (f *fakeAdmin) ListAttractions(context.Context) ([]*domain.Attraction, error) {
	if f.attraction == nil {
		return nil, f.err
	}
	return []*domain.Attraction{f.attraction}, f.err
}

func (f *fakeAdmin) GetAttraction(context.Context, string) (*domain.Attraction, error) {
	if f.attraction == nil {
		return nil, domain.ErrAttractionNotFound
	}
	return f.attraction, f.err
}

func (f *fakeAdmin) ChangeAttractionTier(context.Context, string, domain.ExclusivityTier) error {
	return f.err
}

func (f *fakeAdmin) SetSeason(context.Context, string, bool, time.Time, time.Time) error {
	return f.err
}

func (f *fakeAdmin) ScheduleMaintenance(context.Context, string, time.Time, time.Time) error {
	return f.err
}

func (f *fakeAdmin) IsAttractionAvailable(context.Context, string, time.Time) (bool, error) {
	return f.available, f.err
}

func (f *fakeAdmin) AddServicePlace(context.Context, *domain.ServicePlace) error { return f.err }
func (f *fakeAdmin) RemoveServicePlace(context.Context, string) error            { return f.err }

func (f *fakeAdmin) ListServicePlaces(context.Context) ([]*domain.ServicePlace, error) {
	return nil, f.err
}

func (f *fakeAdmin) AddShow(context.Context, *domain.Show) error { return f.err }
func (f *fakeAdmin) RemoveShow(context.Context, string) error    { return f.err }

func (f *fakeAdmin) ListShows(context.Context) ([]*domain.Show, error) { return nil, f.err }

func (f *fakeAdmin) AddPerformance(context.Context, string, time.Time) error { return f.err }

func (f *fakeAdmin) CancelPerformance(context.Context, string, time.Time) (bool, error) {
	return f.cancelled, f.err
}

func (f *fakeAdmin) IsShowAvailable(context.Context, string, time.Time) (bool, error) {
	return f.available, f.err
}

// fakeTickets serves the ticket endpoints with canned state.
type fakeTickets struct {
	err     error
	basic   *domain.BasicTicket
	pass    *domain.FastPass
	ticket  domain.AccessChecker
	granted bool
}

func (f *fakeTickets) SellBasic(_ context.Context, _ app.SellTicketInput) (*domain.BasicTicket, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.basic, nil
}

func (f *fakeTickets) SellSeasonal(context.Context, app.SellSeasonalInput) (*domain.SeasonalTicket, error) {
	return nil, f.err
}

func (f *fakeTickets) SellSingle(context.Context, app.SellTicketInput, string) (*domain.SingleAttractionTicket, error) {
	return nil, f.err
}

func (f *fakeTickets) IssueFastPass(context.Context, string, time.Time) (*domain.FastPass, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pass, nil
}

func (f *fakeTickets) GetTicket(context.Context, string) (domain.AccessChecker, error) {
	if f.ticket == nil {
		return nil, domain.ErrTicketNotFound
	}
	return f.ticket, f.err
}

func (f *fakeTickets) CheckAccess(context.Context, string, string) (bool, error) {
	return f.granted, f.err
}

func (f *fakeTickets) UseTicket(context.Context, string) error { return f.err }

func (f *fakeTickets) UseFastPass(context.Context, string, time.Time) error { return f.err }

func (f *fakeTickets) GetFastPass(context.Context, string) (*domain.FastPass, error) {
	if f.pass == nil {
		return nil, domain.ErrFastPassNotFound
	}
	return f.pass, f.err
}
