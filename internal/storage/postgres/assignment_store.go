package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cimillas/park-operations/internal/domain"
)

// AssignmentStore backs the park-wide index with Postgres. The primary key
// on (day_index, shift, employee_id) enforces the same uniqueness the
// in-memory backend checks by hand.
type AssignmentStore struct {
	pool *pgxpool.Pool
}

func NewAssignmentStore(pool *pgxpool.Pool) *AssignmentStore {
	return &AssignmentStore{pool: pool}
}

func (s *AssignmentStore) Get(ctx context.Context, day time.Time, shift domain.Shift, employeeID string) (*domain.Assignment, error) {
	const query = `
SELECT employee_id, day, shift, target_kind, target_id, zones
FROM assignments
WHERE day_index = $1 AND shift = $2 AND employee_id = $3`

	row := s.pool.QueryRow(ctx, query, domain.DayIndex(day), string(shift), employeeID)
	assignment, err := scanAssignment(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

func (s *AssignmentStore) Put(ctx context.Context, a domain.Assignment) error {
	const stmt = `
INSERT INTO assignments (day_index, day, shift, employee_id, target_kind, target_id, zones)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	kind, targetID, zones := flattenTarget(a.Target)
	_, err := s.pool.Exec(ctx, stmt,
		domain.DayIndex(a.Day),
		a.Day,
		string(a.Shift),
		a.EmployeeID,
		kind,
		targetID,
		zones,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmployeeAlreadyAssigned
		}
		return fmt.Errorf("put assignment: %w", err)
	}
	return nil
}

func (s *AssignmentStore) Delete(ctx context.Context, day time.Time, shift domain.Shift, employeeID string) (bool, error) {
	const stmt = `
DELETE FROM assignments
WHERE day_index = $1 AND shift = $2 AND employee_id = $3`

	tag, err := s.pool.Exec(ctx, stmt, domain.DayIndex(day), string(shift), employeeID)
	if err != nil {
		return false, fmt.Errorf("delete assignment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *AssignmentStore) List(ctx context.Context, day time.Time, shift domain.Shift) ([]domain.Assignment, error) {
	const query = `
SELECT employee_id, day, shift, target_kind, target_id, zones
FROM assignments
WHERE day_index = $1 AND shift = $2
ORDER BY employee_id ASC`

	rows, err := s.pool.Query(ctx, query, domain.DayIndex(day), string(shift))
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, *assignment)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate assignments: %w", rows.Err())
	}
	return out, nil
}

func flattenTarget(t domain.AssignmentTarget) (kind, targetID string, zones []string) {
	switch target := t.(type) {
	case domain.AttractionTarget:
		return string(domain.TargetAttraction), target.AttractionID, []string{}
	case domain.ServicePlaceTarget:
		return string(domain.TargetServicePlace), target.PlaceID, []string{}
	case domain.ZoneListTarget:
		return string(domain.TargetZones), "", target.Zones
	}
	return "", "", []string{}
}

func rebuildTarget(kind, targetID string, zones []string) domain.AssignmentTarget {
	switch domain.TargetKind(kind) {
	case domain.TargetAttraction:
		return domain.AttractionTarget{AttractionID: targetID}
	case domain.TargetServicePlace:
		return domain.ServicePlaceTarget{PlaceID: targetID}
	case domain.TargetZones:
		return domain.ZoneListTarget{Zones: zones}
	}
	return nil
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var (
		a        domain.Assignment
		shift    string
		kind     string
		targetID string
		zones    []string
	)
	if err := row.Scan(&a.EmployeeID, &a.Day, &shift, &kind, &targetID, &zones); err != nil {
		return nil, err
	}
	a.Shift = domain.Shift(shift)
	a.Target = rebuildTarget(kind, targetID, zones)
	return &a, nil
}
