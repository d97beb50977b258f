package app

import (
	"context"
	"sync"
	"time"

	"github.com/cimillas/park-operations/internal/domain"
)

// Catalogue resolves park entities by identifier. Existence is checked before
// any assignment is recorded.
type Catalogue interface {
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	GetAttraction(ctx context.Context, id string) (*domain.Attraction, error)
	GetServicePlace(ctx context.Context, id string) (*domain.ServicePlace, error)
}

// AssignmentStore is the narrow interface behind the park-wide index:
// day -> shift -> employee -> target. Get returns nil when no entry exists;
// Put reports domain.ErrEmployeeAlreadyAssigned on a duplicate key.
type AssignmentStore interface {
	Get(ctx context.Context, day time.Time, shift domain.Shift, employeeID string) (*domain.Assignment, error)
	Put(ctx context.Context, a domain.Assignment) error
	Delete(ctx context.Context, day time.Time, shift domain.Shift, employeeID string) (bool, error)
	List(ctx context.Context, day time.Time, shift domain.Shift) ([]domain.Assignment, error)
}

// StaffingService is the administrator-facing assignment engine. It is the
// sole writer of the park-wide index and of facility rosters, and keeps both
// consistent. Every mutating operation runs under the engine lock because the
// per-employee-per-shift uniqueness check spans independent rosters and
// cannot be checked-then-set without exclusion.
type StaffingService struct {
	catalogue Catalogue
	store     AssignmentStore

	mu sync.Mutex
}

// NewStaffingService wires the engine to a catalogue and an index store.
func NewStaffingService(catalogue Catalogue, store AssignmentStore) *StaffingService {
	return &StaffingService{
		catalogue: catalogue,
		store:     store,
	}
}

func validateAssignmentArgs(employeeID, targetID string, day time.Time, shift domain.Shift) error {
	if employeeID == "" || targetID == "" || day.IsZero() {
		return domain.ErrNilArgument
	}
	if !shift.IsValid() {
		return domain.ErrInvalidShift
	}
	return nil
}

// ensureUnassigned enforces the park-wide invariant. Callers hold s.mu.
func (s *StaffingService) ensureUnassigned(ctx context.Context, employeeID string, day time.Time, shift domain.Shift) error {
	existing, err := s.store.Get(ctx, day, shift, employeeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrEmployeeAlreadyAssigned
	}
	return nil
}

// AssignToAttraction records the employee at the attraction for the day and
// shift, in the park-wide index and in the attraction's own roster.
func (s *StaffingService) AssignToAttraction(ctx context.Context, employeeID, attractionID string, day time.Time, shift domain.Shift) error {
	if err := validateAssignmentArgs(employeeID, attractionID, day, shift); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employee, err := s.catalogue.GetEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	attraction, err := s.catalogue.GetAttraction(ctx, attractionID)
	if err != nil {
		return err
	}
	if err := s.ensureUnassigned(ctx, employeeID, day, shift); err != nil {
		return err
	}

	if err := s.store.Put(ctx, domain.Assignment{
		EmployeeID: employeeID,
		Day:        day,
		Shift:      shift,
		Target:     domain.AttractionTarget{AttractionID: attractionID},
	}); err != nil {
		return err
	}
	if attraction.Roster != nil {
		attraction.Roster.Assign(employee, day, shift)
	}
	return nil
}

// AssignCookToCafeteria records a certified cook at a cafeteria.
func (s *StaffingService) AssignCookToCafeteria(ctx context.Context, cookID, cafeteriaID string, day time.Time, shift domain.Shift) error {
	if err := validateAssignmentArgs(cookID, cafeteriaID, day, shift); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cook, err := s.catalogue.GetEmployee(ctx, cookID)
	if err != nil {
		return err
	}
	if cook.Role != domain.RoleCook {
		return domain.ErrWrongRole
	}
	if !cook.CertifiedOn(day) {
		return domain.ErrCookNotCertified
	}
	place, err := s.catalogue.GetServicePlace(ctx, cafeteriaID)
	if err != nil {
		return err
	}
	if !place.RequiresCook() {
		return domain.ErrNotACafeteria
	}
	if err := s.ensureUnassigned(ctx, cookID, day, shift); err != nil {
		return err
	}

	if err := s.store.Put(ctx, domain.Assignment{
		EmployeeID: cookID,
		Day:        day,
		Shift:      shift,
		Target:     domain.ServicePlaceTarget{PlaceID: cafeteriaID},
	}); err != nil {
		return err
	}
	if place.Roster != nil {
		place.Roster.Assign(cook, day, shift)
	}
	return nil
}

// AssignCashierToServicePlace records a cashier at any service place.
func (s *StaffingService) AssignCashierToServicePlace(ctx context.Context, cashierID, placeID string, day time.Time, shift domain.Shift) error {
	if err := validateAssignmentArgs(cashierID, placeID, day, shift); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cashier, err := s.catalogue.GetEmployee(ctx, cashierID)
	if err != nil {
		return err
	}
	if cashier.Role != domain.RoleCashier {
		return domain.ErrWrongRole
	}
	place, err := s.catalogue.GetServicePlace(ctx, placeID)
	if err != nil {
		return err
	}
	if err := s.ensureUnassigned(ctx, cashierID, day, shift); err != nil {
		return err
	}

	if err := s.store.Put(ctx, domain.Assignment{
		EmployeeID: cashierID,
		Day:        day,
		Shift:      shift,
		Target:     domain.ServicePlaceTarget{PlaceID: placeID},
	}); err != nil {
		return err
	}
	if place.Roster != nil {
		place.Roster.Assign(cashier, day, shift)
	}
	return nil
}

// AssignToGeneralService records an employee on cleaning/support duty over a
// non-empty list of zones. Zones have no roster; only the index is written.
func (s *StaffingService) AssignToGeneralService(ctx context.Context, employeeID string, zones []string, day time.Time, shift domain.Shift) error {
	if employeeID == "" || day.IsZero() {
		return domain.ErrNilArgument
	}
	if !shift.IsValid() {
		return domain.ErrInvalidShift
	}
	if len(zones) == 0 {
		return domain.ErrZonesRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.catalogue.GetEmployee(ctx, employeeID); err != nil {
		return err
	}
	if err := s.ensureUnassigned(ctx, employeeID, day, shift); err != nil {
		return err
	}

	copied := make([]string, len(zones))
	copy(copied, zones)
	return s.store.Put(ctx, domain.Assignment{
		EmployeeID: employeeID,
		Day:        day,
		Shift:      shift,
		Target:     domain.ZoneListTarget{Zones: copied},
	})
}

// ReleaseAssignment removes the index entry for the employee on the day and
// shift, reporting whether one existed. The facility roster keeps its record;
// rosters never prune.
func (s *StaffingService) ReleaseAssignment(ctx context.Context, employeeID string, day time.Time, shift domain.Shift) (bool, error) {
	if employeeID == "" || day.IsZero() {
		return false, domain.ErrNilArgument
	}
	if !shift.IsValid() {
		return false, domain.ErrInvalidShift
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(ctx, day, shift, employeeID)
}

// MeetsMinimumStaffing reports whether enough employees are assigned to the
// attraction for the day and shift. With no index entries at all for that
// slot the answer is false, whatever the attraction requires.
func (s *StaffingService) MeetsMinimumStaffing(ctx context.Context, attractionID string, day time.Time, shift domain.Shift) (bool, error) {
	if attractionID == "" || day.IsZero() || !shift.IsValid() {
		return false, nil
	}

	attraction, err := s.catalogue.GetAttraction(ctx, attractionID)
	if err != nil {
		if err == domain.ErrAttractionNotFound {
			return false, nil
		}
		return false, err
	}

	entries, err := s.store.List(ctx, day, shift)
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return false, nil
	}

	assigned := 0
	for _, entry := range entries {
		if target, ok := entry.Target.(domain.AttractionTarget); ok && target.AttractionID == attractionID {
			assigned++
		}
	}
	return assigned >= attraction.RequiredStaff, nil
}

// IsAssigned reports whether the employee holds any assignment for the day
// and shift. Absence and invalid arguments both answer false.
func (s *StaffingService) IsAssigned(ctx context.Context, employeeID string, day time.Time, shift domain.Shift) (bool, error) {
	if employeeID == "" || day.IsZero() || !shift.IsValid() {
		return false, nil
	}
	entry, err := s.store.Get(ctx, day, shift, employeeID)
	if err != nil {
		return false, err
	}
	return entry != nil, nil
}

// EmployeesOnShift returns the IDs of every employee assigned anywhere in the
// park for the day and shift. Empty, never nil, when nothing matches.
func (s *StaffingService) EmployeesOnShift(ctx context.Context, day time.Time, shift domain.Shift) ([]string, error) {
	if day.IsZero() || !shift.IsValid() {
		return []string{}, nil
	}
	entries, err := s.store.List(ctx, day, shift)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.EmployeeID)
	}
	return ids, nil
}

// AssignmentTargetOf returns the target the employee is assigned to, or nil
// when no assignment exists.
func (s *StaffingService) AssignmentTargetOf(ctx context.Context, employeeID string, day time.Time, shift domain.Shift) (domain.AssignmentTarget, error) {
	if employeeID == "" || day.IsZero() || !shift.IsValid() {
		return nil, nil
	}
	entry, err := s.store.Get(ctx, day, shift, employeeID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return entry.Target, nil
}
