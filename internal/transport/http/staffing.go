package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cimillas/park-operations/internal/domain"
)

// StaffingService is the surface of the assignment engine the transport
// layer depends on.
type StaffingService interface {
	AssignToAttraction(ctx context.Context, employeeID, attractionID string, day time.Time, shift domain.Shift) error
	AssignCookToCafeteria(ctx context.Context, cookID, cafeteriaID string, day time.Time, shift domain.Shift) error
	AssignCashierToServicePlace(ctx context.Context, cashierID, placeID string, day time.Time, shift domain.Shift) error
	AssignToGeneralService(ctx context.Context, employeeID string, zones []string, day time.Time, shift domain.Shift) error
	ReleaseAssignment(ctx context.Context, employeeID string, day time.Time, shift domain.Shift) (bool, error)
	MeetsMinimumStaffing(ctx context.Context, attractionID string, day time.Time, shift domain.Shift) (bool, error)
	IsAssigned(ctx context.Context, employeeID string, day time.Time, shift domain.Shift) (bool, error)
	EmployeesOnShift(ctx context.Context, day time.Time, shift domain.Shift) ([]string, error)
	AssignmentTargetOf(ctx context.Context, employeeID string, day time.Time, shift domain.Shift) (domain.AssignmentTarget, error)
}

type assignRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Day        string `json:"day" validate:"required"`
	Shift      string `json:"shift" validate:"required"`
}

type generalServiceRequest struct {
	EmployeeID string   `json:"employee_id" validate:"required"`
	Day        string   `json:"day" validate:"required"`
	Shift      string   `json:"shift" validate:"required"`
	Zones      []string `json:"zones" validate:"required,min=1"`
}

type assignmentResponse struct {
	EmployeeID string `json:"employee_id"`
	Day        string `json:"day"`
	Shift      string `json:"shift"`
}

func (r assignRequest) slot(w http.ResponseWriter) (time.Time, domain.Shift, bool) {
	day, ok := parseDay(r.Day)
	if !ok {
		writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
		return time.Time{}, "", false
	}
	shift := domain.Shift(r.Shift)
	if !shift.IsValid() {
		writeError(w, http.StatusBadRequest, codeInvalidShift, domain.ErrInvalidShift.Error())
		return time.Time{}, "", false
	}
	return day, shift, true
}

// assignHandler factors the shared shape of the three workplace assignment
// endpoints: decode, resolve the slot, call the engine.
func assignHandler(assign func(ctx context.Context, employeeID, targetID string, day time.Time, shift domain.Shift) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID := mux.Vars(r)["id"]

		var req assignRequest
		if !decodeBody(w, r, &req) {
			return
		}
		day, shift, ok := req.slot(w)
		if !ok {
			return
		}

		if err := assign(r.Context(), req.EmployeeID, targetID, day, shift); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, assignmentResponse{
			EmployeeID: req.EmployeeID,
			Day:        day.Format(dayLayout),
			Shift:      string(shift),
		})
	}
}

// HandleAssignToAttraction assigns an employee to an attraction shift.
func HandleAssignToAttraction(svc StaffingService) http.HandlerFunc {
	return assignHandler(svc.AssignToAttraction)
}

// HandleAssignCook assigns a certified cook to a cafeteria shift.
func HandleAssignCook(svc StaffingService) http.HandlerFunc {
	return assignHandler(svc.AssignCookToCafeteria)
}

// HandleAssignCashier assigns a cashier to a service place shift.
func HandleAssignCashier(svc StaffingService) http.HandlerFunc {
	return assignHandler(svc.AssignCashierToServicePlace)
}

// HandleAssignGeneralService assigns an employee to a zone sweep.
func HandleAssignGeneralService(svc StaffingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generalServiceRequest
		if !decodeBody(w, r, &req) {
			return
		}
		day, ok := parseDay(req.Day)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidDay, "day must be formatted as 2006-01-02")
			return
		}
		shift := domain.Shift(req.Shift)
		if !shift.IsValid() {
			writeError(w, http.StatusBadRequest, codeInvalidShift, domain.ErrInvalidShift.Error())
			return
		}

		if err := svc.AssignToGeneralService(r.Context(), req.EmployeeID, req.Zones, day, shift); err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, assignmentResponse{
			EmployeeID: req.EmployeeID,
			Day:        day.Format(dayLayout),
			Shift:      string(shift),
		})
	}
}

// HandleReleaseAssignment frees an employee's slot for the day and shift.
func HandleReleaseAssignment(svc StaffingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := mux.Vars(r)["employeeID"]
		day, shift, ok := slotParams(w, r)
		if !ok {
			return
		}

		released, err := svc.ReleaseAssignment(r.Context(), employeeID, day, shift)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"released": released})
	}
}

type targetResponse struct {
	Kind         string   `json:"kind"`
	AttractionID string   `json:"attraction_id,omitempty"`
	PlaceID      string   `json:"place_id,omitempty"`
	Zones        []string `json:"zones,omitempty"`
}

type assignmentStateResponse struct {
	Assigned bool            `json:"assigned"`
	Target   *targetResponse `json:"target,omitempty"`
}

// HandleGetAssignment reports whether an employee holds a slot, and where.
func HandleGetAssignment(svc StaffingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		employeeID := mux.Vars(r)["employeeID"]
		day, shift, ok := slotParams(w, r)
		if !ok {
			return
		}

		target, err := svc.AssignmentTargetOf(r.Context(), employeeID, day, shift)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if target == nil {
			writeJSON(w, http.StatusOK, assignmentStateResponse{Assigned: false})
			return
		}

		resp := assignmentStateResponse{Assigned: true, Target: &targetResponse{Kind: string(target.Kind())}}
		switch t := target.(type) {
		case domain.AttractionTarget:
			resp.Target.AttractionID = t.AttractionID
		case domain.ServicePlaceTarget:
			resp.Target.PlaceID = t.PlaceID
		case domain.ZoneListTarget:
			resp.Target.Zones = t.Zones
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleMinimumStaffing reports whether an attraction can open a shift.
func HandleMinimumStaffing(svc StaffingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attractionID := mux.Vars(r)["id"]
		day, shift, ok := slotParams(w, r)
		if !ok {
			return
		}

		meets, err := svc.MeetsMinimumStaffing(r.Context(), attractionID, day, shift)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"meets_minimum": meets})
	}
}

// HandleShiftRoster lists every employee assigned anywhere on the shift.
func HandleShiftRoster(svc StaffingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, shift, ok := slotParams(w, r)
		if !ok {
			return
		}

		employees, err := svc.EmployeesOnShift(r.Context(), day, shift)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"employee_ids": employees})
	}
}
