package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/schedule"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
)

type shiftAssignmentRepository struct {
	db *database.DB
}

func NewShiftAssignmentRepository(db *database.DB) schedule.ShiftAssignmentRepository {
	return &shiftAssignmentRepository{db: db}
}

const shiftSelectColumns = `
	s.id, s.employee_id, s.customer_id, s.date, s.start_time, s.end_time,
	s.location, s.status, s.created_at, s.updated_at,
	e.full_name AS employee_name,
	c.name AS customer_name
`

// Create implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) Create(ctx context.Context, shift schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (employee_id, customer_id, date, start_time, end_time, location, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.EmployeeID,
		shift.CustomerID,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.Location,
		shift.Status,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)
	if err != nil {
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return shift, nil
}

// GetByID implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) GetByID(ctx context.Context, id string) (schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftSelectColumns + `
		FROM shift_assignments s
		LEFT JOIN employees e ON e.id = s.employee_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.id = $1
	`

	var shift schedule.ShiftAssignment
	err := q.QueryRow(ctx, query, id).Scan(
		&shift.ID, &shift.EmployeeID, &shift.CustomerID, &shift.Date, &shift.StartTime, &shift.EndTime,
		&shift.Location, &shift.Status, &shift.CreatedAt, &shift.UpdatedAt,
		&shift.EmployeeName, &shift.CustomerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ShiftAssignment{}, schedule.ErrShiftAssignmentNotFound
		}
		return schedule.ShiftAssignment{}, fmt.Errorf("failed to get shift assignment by id: %w", err)
	}

	return shift, nil
}

// GetByEmployeeAndDate implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftSelectColumns + `
		FROM shift_assignments s
		LEFT JOIN employees e ON e.id = s.employee_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.employee_id = $1
		  AND s.date = $2
		  AND s.status != 'cancelled'
		LIMIT 1
	`

	var shift schedule.ShiftAssignment
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&shift.ID, &shift.EmployeeID, &shift.CustomerID, &shift.Date, &shift.StartTime, &shift.EndTime,
		&shift.Location, &shift.Status, &shift.CreatedAt, &shift.UpdatedAt,
		&shift.EmployeeName, &shift.CustomerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No shift for this employee and date
		}
		return nil, fmt.Errorf("failed to get shift assignment by employee and date: %w", err)
	}

	return &shift, nil
}

// List implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) List(ctx context.Context, filter schedule.ShiftAssignmentFilter) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.CustomerID != nil && *filter.CustomerID != "" {
		baseWhere += fmt.Sprintf(" AND s.customer_id = $%d", argIdx)
		args = append(args, *filter.CustomerID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND s.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND s.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND s.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND s.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM shift_assignments s
		LEFT JOIN employees e ON e.id = s.employee_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE %s
		ORDER BY s.date ASC, s.start_time ASC
	`, shiftSelectColumns, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.ShiftAssignment
	for rows.Next() {
		var shift schedule.ShiftAssignment
		err := rows.Scan(
			&shift.ID, &shift.EmployeeID, &shift.CustomerID, &shift.Date, &shift.StartTime, &shift.EndTime,
			&shift.Location, &shift.Status, &shift.CreatedAt, &shift.UpdatedAt,
			&shift.EmployeeName, &shift.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}

// UpdateStatus implements schedule.ShiftAssignmentRepository.
func (r *shiftAssignmentRepository) UpdateStatus(ctx context.Context, id string, status schedule.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	commandTag, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return schedule.ErrShiftAssignmentNotFound
	}

	return nil
}

// ListDue implements schedule.ShiftAssignmentRepository.
// Start/end times are wall-clock text; comparing against the server clock is
// good enough for lifecycle advancement, which runs every few minutes anyway.
func (r *shiftAssignmentRepository) ListDue(ctx context.Context, now time.Time) ([]schedule.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	query := `
		SELECT ` + shiftSelectColumns + `
		FROM shift_assignments s
		LEFT JOIN employees e ON e.id = s.employee_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE (s.status = 'scheduled' AND (s.date < $1 OR (s.date = $1 AND s.start_time <= $2)))
		   OR (s.status = 'in_progress' AND (s.date < $1 OR (s.date = $1 AND s.end_time <= $2)))
		ORDER BY s.date ASC
	`

	rows, err := q.Query(ctx, query, today, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to query due shift assignments: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.ShiftAssignment
	for rows.Next() {
		var shift schedule.ShiftAssignment
		err := rows.Scan(
			&shift.ID, &shift.EmployeeID, &shift.CustomerID, &shift.Date, &shift.StartTime, &shift.EndTime,
			&shift.Location, &shift.Status, &shift.CreatedAt, &shift.UpdatedAt,
			&shift.EmployeeName, &shift.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		shifts = append(shifts, shift)
	}

	return shifts, nil
}
