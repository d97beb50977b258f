package memory

import (
	"context"
	"sync"
	"time"

	"github.com/cimillas/park-operations/internal/domain"
)

type slotKey struct {
	day   int64
	shift domain.Shift
}

// AssignmentStore keeps the park-wide index in nested maps, the default
// backend for a single-process deployment.
type AssignmentStore struct {
	mu    sync.RWMutex
	slots map[slotKey]map[string]domain.Assignment
}

func NewAssignmentStore() *AssignmentStore {
	return &AssignmentStore{slots: make(map[slotKey]map[string]domain.Assignment)}
}

func key(day time.Time, shift domain.Shift) slotKey {
	return slotKey{day: domain.DayIndex(day), shift: shift}
}

func (s *AssignmentStore) Get(_ context.Context, day time.Time, shift domain.Shift, employeeID string) (*domain.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.slots[key(day, shift)][employeeID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *AssignmentStore) Put(_ context.Context, a domain.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(a.Day, a.Shift)
	byEmployee, ok := s.slots[k]
	if !ok {
		byEmployee = make(map[string]domain.Assignment)
		s.slots[k] = byEmployee
	}
	if _, exists := byEmployee[a.EmployeeID]; exists {
		return domain.ErrEmployeeAlreadyAssigned
	}
	byEmployee[a.EmployeeID] = a
	return nil
}

func (s *AssignmentStore) Delete(_ context.Context, day time.Time, shift domain.Shift, employeeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byEmployee, ok := s.slots[key(day, shift)]
	if !ok {
		return false, nil
	}
	if _, exists := byEmployee[employeeID]; !exists {
		return false, nil
	}
	delete(byEmployee, employeeID)
	return true, nil
}

func (s *AssignmentStore) List(_ context.Context, day time.Time, shift domain.Shift) ([]domain.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byEmployee := s.slots[key(day, shift)]
	out := make([]domain.Assignment, 0, len(byEmployee))
	for _, entry := range byEmployee {
		out = append(out, entry)
	}
	return out, nil
}
