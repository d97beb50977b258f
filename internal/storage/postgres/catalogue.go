package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/park-operations/internal/domain"
)

// Catalogue persists park entities in Postgres. Availability windows and
// show performances are stored alongside their owning rows; rosters are an
// in-process view and are rebuilt empty on load.
type Catalogue struct {
	pool *pgxpool.Pool
}

func NewCatalogue(pool *pgxpool.Pool) *Catalogue {
	return &Catalogue{pool: pool}
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

const employeeColumns = `id, name, email, role, general_service, extra_hours, certified, certified_from, certified_until`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var (
		e          domain.Employee
		role       string
		from, till *time.Time
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &role, &e.GeneralService, &e.ExtraHours, &e.Certified, &from, &till); err != nil {
		return nil, err
	}
	e.Role = domain.EmployeeRole(role)
	e.CertifiedFrom = timeOrZero(from)
	e.CertifiedUntil = timeOrZero(till)
	return &e, nil
}

func (c *Catalogue) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (c *Catalogue) AddEmployee(ctx context.Context, e *domain.Employee) error {
	const stmt = `
INSERT INTO employees (` + employeeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := c.pool.Exec(ctx, stmt,
		e.ID, e.Name, e.Email, string(e.Role), e.GeneralService, e.ExtraHours,
		e.Certified, nullableTime(e.CertifiedFrom), nullableTime(e.CertifiedUntil),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeAlreadyExists
		}
		return fmt.Errorf("add employee: %w", err)
	}
	return nil
}

func (c *Catalogue) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	const stmt = `
UPDATE employees
SET name = $2, email = $3, role = $4, general_service = $5, extra_hours = $6,
    certified = $7, certified_from = $8, certified_until = $9
WHERE id = $1`
	tag, err := c.pool.Exec(ctx, stmt,
		e.ID, e.Name, e.Email, string(e.Role), e.GeneralService, e.ExtraHours,
		e.Certified, nullableTime(e.CertifiedFrom), nullableTime(e.CertifiedUntil),
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (c *Catalogue) RemoveEmployee(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remove employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (c *Catalogue) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	const query = `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC`
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []*domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate employees: %w", rows.Err())
	}
	return out, nil
}

const attractionColumns = `id, name, kind, location, climate_restriction, exclusivity, required_staff, capacity,
	risk, min_height_cm, max_height_cm, min_weight_kg, max_weight_kg, health_restrictions, min_age,
	seasonal, season_start, season_end, blackout_days`

func scanAttraction(row pgx.Row) (*domain.Attraction, error) {
	var (
		a          domain.Attraction
		kind       string
		tier       string
		risk       string
		seasonal   bool
		start, end *time.Time
		blackout   []time.Time
	)
	err := row.Scan(&a.ID, &a.Name, &kind, &a.Location, &a.ClimateRestriction, &tier, &a.RequiredStaff, &a.Capacity,
		&risk, &a.MinHeightCM, &a.MaxHeightCM, &a.MinWeightKG, &a.MaxWeightKG, &a.HealthRestrictions, &a.MinAge,
		&seasonal, &start, &end, &blackout)
	if err != nil {
		return nil, err
	}
	a.Kind = domain.AttractionKind(kind)
	a.Exclusivity = domain.ExclusivityTier(tier)
	a.Risk = domain.RiskLevel(risk)
	a.Window = domain.RestoreWindow(seasonal, timeOrZero(start), timeOrZero(end), blackout)
	a.Roster = domain.NewWorkplaceRoster()
	return &a, nil
}

func attractionArgs(a *domain.Attraction) []any {
	seasonal := false
	var start, end time.Time
	var blackout []time.Time
	if a.Window != nil {
		seasonal = a.Window.Seasonal()
		start, end = a.Window.SeasonRange()
		blackout = a.Window.BlackoutDays()
	}
	if blackout == nil {
		blackout = []time.Time{}
	}
	restrictions := a.HealthRestrictions
	if restrictions == nil {
		restrictions = []string{}
	}
	return []any{
		a.ID, a.Name, string(a.Kind), a.Location, a.ClimateRestriction, string(a.Exclusivity),
		a.RequiredStaff, a.Capacity, string(a.Risk), a.MinHeightCM, a.MaxHeightCM,
		a.MinWeightKG, a.MaxWeightKG, restrictions, a.MinAge,
		seasonal, nullableTime(start), nullableTime(end), blackout,
	}
}

func (c *Catalogue) GetAttraction(ctx context.Context, id string) (*domain.Attraction, error) {
	const query = `SELECT ` + attractionColumns + ` FROM attractions WHERE id = $1`
	a, err := scanAttraction(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrAttractionNotFound
		}
		return nil, fmt.Errorf("get attraction: %w", err)
	}
	return a, nil
}

func (c *Catalogue) AddAttraction(ctx context.Context, a *domain.Attraction) error {
	const stmt = `
INSERT INTO attractions (` + attractionColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := c.pool.Exec(ctx, stmt, attractionArgs(a)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAttractionAlreadyExists
		}
		return fmt.Errorf("add attraction: %w", err)
	}
	return nil
}

func (c *Catalogue) UpdateAttraction(ctx context.Context, a *domain.Attraction) error {
	const stmt = `
UPDATE attractions
SET name = $2, kind = $3, location = $4, climate_restriction = $5, exclusivity = $6,
    required_staff = $7, capacity = $8, risk = $9, min_height_cm = $10, max_height_cm = $11,
    min_weight_kg = $12, max_weight_kg = $13, health_restrictions = $14, min_age = $15,
    seasonal = $16, season_start = $17, season_end = $18, blackout_days = $19
WHERE id = $1`
	tag, err := c.pool.Exec(ctx, stmt, attractionArgs(a)...)
	if err != nil {
		return fmt.Errorf("update attraction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAttractionNotFound
	}
	return nil
}

func (c *Catalogue) RemoveAttraction(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM attractions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remove attraction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAttractionNotFound
	}
	return nil
}

func (c *Catalogue) ListAttractions(ctx context.Context) ([]*domain.Attraction, error) {
	const query = `SELECT ` + attractionColumns + ` FROM attractions ORDER BY name ASC`
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list attractions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Attraction
	for rows.Next() {
		a, err := scanAttraction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attraction: %w", err)
		}
		out = append(out, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate attractions: %w", rows.Err())
	}
	return out, nil
}

const servicePlaceColumns = `id, name, location, kind, capacity, menu`

func scanServicePlace(row pgx.Row) (*domain.ServicePlace, error) {
	var (
		p    domain.ServicePlace
		kind string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Location, &kind, &p.Capacity, &p.Menu); err != nil {
		return nil, err
	}
	p.Kind = domain.ServicePlaceKind(kind)
	p.Roster = domain.NewWorkplaceRoster()
	return &p, nil
}

func (c *Catalogue) GetServicePlace(ctx context.Context, id string) (*domain.ServicePlace, error) {
	const query = `SELECT ` + servicePlaceColumns + ` FROM service_places WHERE id = $1`
	p, err := scanServicePlace(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrServicePlaceNotFound
		}
		return nil, fmt.Errorf("get service place: %w", err)
	}
	return p, nil
}

func (c *Catalogue) AddServicePlace(ctx context.Context, p *domain.ServicePlace) error {
	const stmt = `
INSERT INTO service_places (` + servicePlaceColumns + `)
VALUES ($1, $2, $3, $4, $5, $6)`
	menu := p.Menu
	if menu == nil {
		menu = []string{}
	}
	_, err := c.pool.Exec(ctx, stmt, p.ID, p.Name, p.Location, string(p.Kind), p.Capacity, menu)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrServicePlaceAlreadyExists
		}
		return fmt.Errorf("add service place: %w", err)
	}
	return nil
}

func (c *Catalogue) RemoveServicePlace(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM service_places WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remove service place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrServicePlaceNotFound
	}
	return nil
}

func (c *Catalogue) ListServicePlaces(ctx context.Context) ([]*domain.ServicePlace, error) {
	const query = `SELECT ` + servicePlaceColumns + ` FROM service_places ORDER BY name ASC`
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list service places: %w", err)
	}
	defer rows.Close()

	var out []*domain.ServicePlace
	for rows.Next() {
		p, err := scanServicePlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service place: %w", err)
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate service places: %w", rows.Err())
	}
	return out, nil
}

const showColumns = `id, name, duration, schedule, capacity, climate_restriction, seasonal, season_start, season_end, performances`

func scanShow(row pgx.Row) (*domain.Show, error) {
	var (
		s            domain.Show
		start, end   *time.Time
		performances []time.Time
	)
	err := row.Scan(&s.ID, &s.Name, &s.Duration, &s.Schedule, &s.Capacity, &s.ClimateRestriction,
		&s.Seasonal, &start, &end, &performances)
	if err != nil {
		return nil, err
	}
	s.SeasonStart = timeOrZero(start)
	s.SeasonEnd = timeOrZero(end)
	s.SetPerformances(performances)
	return &s, nil
}

func showArgs(s *domain.Show) []any {
	performances := s.Performances()
	return []any{
		s.ID, s.Name, s.Duration, s.Schedule, s.Capacity, s.ClimateRestriction,
		s.Seasonal, nullableTime(s.SeasonStart), nullableTime(s.SeasonEnd), performances,
	}
}

func (c *Catalogue) GetShow(ctx context.Context, id string) (*domain.Show, error) {
	const query = `SELECT ` + showColumns + ` FROM shows WHERE id = $1`
	s, err := scanShow(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrShowNotFound
		}
		return nil, fmt.Errorf("get show: %w", err)
	}
	return s, nil
}

func (c *Catalogue) AddShow(ctx context.Context, s *domain.Show) error {
	const stmt = `
INSERT INTO shows (` + showColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := c.pool.Exec(ctx, stmt, showArgs(s)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShowAlreadyExists
		}
		return fmt.Errorf("add show: %w", err)
	}
	return nil
}

func (c *Catalogue) UpdateShow(ctx context.Context, s *domain.Show) error {
	const stmt = `
UPDATE shows
SET name = $2, duration = $3, schedule = $4, capacity = $5, climate_restriction = $6,
    seasonal = $7, season_start = $8, season_end = $9, performances = $10
WHERE id = $1`
	tag, err := c.pool.Exec(ctx, stmt, showArgs(s)...)
	if err != nil {
		return fmt.Errorf("update show: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}

func (c *Catalogue) RemoveShow(ctx context.Context, id string) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("remove show: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShowNotFound
	}
	return nil
}

func (c *Catalogue) ListShows(ctx context.Context) ([]*domain.Show, error) {
	const query = `SELECT ` + showColumns + ` FROM shows ORDER BY name ASC`
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var out []*domain.Show
	for rows.Next() {
		s, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate shows: %w", rows.Err())
	}
	return out, nil
}
