package domain

import (
	"testing"
	"time"
)

func TestWorkplaceRoster_Assign(t *testing.T) {
	t.Parallel()

	d := day(2025, time.March, 3)
	employee := &Employee{ID: "emp-1", Name: "Ana"}

	t.Run("records and reads back", func(t *testing.T) {
		r := NewWorkplaceRoster()
		if !r.Assign(employee, d, ShiftOpening) {
			t.Fatalf("expected assign to succeed")
		}

		got := r.EmployeesOn(d, ShiftOpening)
		if len(got) != 1 || got[0].ID != "emp-1" {
			t.Fatalf("expected [emp-1], got %v", got)
		}
		if len(r.EmployeesOn(d, ShiftClosing)) != 0 {
			t.Fatalf("expected the other shift to stay empty")
		}
		if len(r.EmployeesOn(d.Add(24*time.Hour), ShiftOpening)) != 0 {
			t.Fatalf("expected the next day to stay empty")
		}
	})

	t.Run("idempotent per employee", func(t *testing.T) {
		r := NewWorkplaceRoster()
		if !r.Assign(employee, d, ShiftOpening) || !r.Assign(employee, d, ShiftOpening) {
			t.Fatalf("expected repeated assign to succeed")
		}
		if got := r.EmployeesOn(d, ShiftOpening); len(got) != 1 {
			t.Fatalf("expected a single occurrence, got %d", len(got))
		}
	})

	t.Run("rejects bad arguments", func(t *testing.T) {
		r := NewWorkplaceRoster()
		if r.Assign(nil, d, ShiftOpening) {
			t.Fatalf("expected nil employee to be rejected")
		}
		if r.Assign(employee, time.Time{}, ShiftOpening) {
			t.Fatalf("expected zero day to be rejected")
		}
		if r.Assign(employee, d, Shift("Night")) {
			t.Fatalf("expected unknown shift to be rejected")
		}
	})

	t.Run("empty reads are never nil", func(t *testing.T) {
		r := NewWorkplaceRoster()
		if got := r.EmployeesOn(d, ShiftOpening); got == nil {
			t.Fatalf("expected empty slice, got nil")
		}
		if got := r.EmployeesOn(time.Time{}, ShiftOpening); got == nil {
			t.Fatalf("expected empty slice for zero day, got nil")
		}
	})

	t.Run("same day different clock times share the slot", func(t *testing.T) {
		r := NewWorkplaceRoster()
		r.Assign(employee, d.Add(9*time.Hour), ShiftOpening)
		if got := r.EmployeesOn(d.Add(20*time.Hour), ShiftOpening); len(got) != 1 {
			t.Fatalf("expected the same calendar day to resolve to one slot")
		}
	})
}
