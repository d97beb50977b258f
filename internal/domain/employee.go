package domain

import "time"

// EmployeeRole classifies what an employee can be assigned to.
type EmployeeRole string

const (
	RoleCook                 EmployeeRole = "cook"
	RoleCashier              EmployeeRole = "cashier"
	RoleRegular              EmployeeRole = "regular"
	RoleGeneralService       EmployeeRole = "general_service"
	RoleHighRiskAttraction   EmployeeRole = "high_risk_attraction"
	RoleMediumRiskAttraction EmployeeRole = "medium_risk_attraction"
)

// Employee is a park worker. Certification fields only apply to cooks and
// attraction operators; the certification window is open-ended when both
// bounds are zero.
type Employee struct {
	ID             string
	Name           string
	Email          string
	Role           EmployeeRole
	GeneralService bool
	ExtraHours     bool
	Certified      bool
	CertifiedFrom  time.Time
	CertifiedUntil time.Time
}

// CertifiedOn reports whether the employee holds a valid certification on the
// given day.
func (e *Employee) CertifiedOn(day time.Time) bool {
	if !e.Certified {
		return false
	}
	if e.CertifiedFrom.IsZero() && e.CertifiedUntil.IsZero() {
		return true
	}
	if day.IsZero() {
		return false
	}
	return !day.Before(e.CertifiedFrom) && !day.After(e.CertifiedUntil)
}
