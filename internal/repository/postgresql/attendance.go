package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/attendance"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelectColumns = `
	a.id, a.employee_id, a.shift_assignment_id, a.date, a.status,
	a.check_in, a.check_out, a.hours_worked, a.notes,
	a.replacement_type, a.replacement_vendor_id, a.replacement_employee_id,
	a.replacement_notes, a.overtime, a.relieving_cost,
	a.created_at, a.updated_at,
	e.full_name AS employee_name,
	c.name AS customer_name
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.ShiftAssignmentID, &rec.Date, &rec.Status,
		&rec.CheckIn, &rec.CheckOut, &rec.HoursWorked, &rec.Notes,
		&rec.ReplacementType, &rec.ReplacementVendorID, &rec.ReplacementEmployeeID,
		&rec.ReplacementNotes, &rec.Overtime, &rec.RelievingCost,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.CustomerName,
	)
	return rec, err
}

// Upsert implements attendance.AttendanceRepository.
// The unique constraint on (employee_id, date) makes repeated submissions for
// the same pair idempotent: the last write wins.
func (r *attendanceRepository) Upsert(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, shift_assignment_id, date, status,
			check_in, check_out, hours_worked, notes,
			replacement_type, replacement_vendor_id, replacement_employee_id,
			replacement_notes, overtime, relieving_cost
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			shift_assignment_id     = EXCLUDED.shift_assignment_id,
			status                  = EXCLUDED.status,
			check_in                = EXCLUDED.check_in,
			check_out               = EXCLUDED.check_out,
			hours_worked            = EXCLUDED.hours_worked,
			notes                   = EXCLUDED.notes,
			replacement_type        = EXCLUDED.replacement_type,
			replacement_vendor_id   = EXCLUDED.replacement_vendor_id,
			replacement_employee_id = EXCLUDED.replacement_employee_id,
			replacement_notes       = EXCLUDED.replacement_notes,
			overtime                = EXCLUDED.overtime,
			relieving_cost          = EXCLUDED.relieving_cost,
			updated_at              = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.ShiftAssignmentID,
		rec.Date,
		rec.Status,
		rec.CheckIn,
		rec.CheckOut,
		rec.HoursWorked,
		rec.Notes,
		rec.ReplacementType,
		rec.ReplacementVendorID,
		rec.ReplacementEmployeeID,
		rec.ReplacementNotes,
		rec.Overtime,
		rec.RelievingCost,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceSelectColumns + `
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN shift_assignments s ON s.id = a.shift_assignment_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE a.id = $1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceSelectColumns + `
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN shift_assignments s ON s.id = a.shift_assignment_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.AttendanceRepository.
// The edit flow rewrites the mutable columns of one record by id; the date
// and employee are immutable once a record exists.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records SET
			status                  = $1,
			check_in                = $2,
			check_out               = $3,
			hours_worked            = $4,
			notes                   = $5,
			replacement_type        = $6,
			replacement_vendor_id   = $7,
			replacement_employee_id = $8,
			replacement_notes       = $9,
			overtime                = $10,
			relieving_cost          = $11,
			updated_at              = NOW()
		WHERE id = $12
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.Status,
		rec.CheckIn,
		rec.CheckOut,
		rec.HoursWorked,
		rec.Notes,
		rec.ReplacementType,
		rec.ReplacementVendorID,
		rec.ReplacementEmployeeID,
		rec.ReplacementNotes,
		rec.Overtime,
		rec.RelievingCost,
		rec.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.CustomerID != nil && *filter.CustomerID != "" {
		baseWhere += fmt.Sprintf(" AND s.customer_id = $%d", argIdx)
		args = append(args, *filter.CustomerID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records a
		LEFT JOIN shift_assignments s ON s.id = a.shift_assignment_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	orderByField := "a.date"
	switch filter.SortBy {
	case "employee_name":
		orderByField = "e.full_name"
	case "status":
		orderByField = "a.status"
	case "check_in":
		orderByField = "a.check_in"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN shift_assignments s ON s.id = a.shift_assignment_id
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, attendanceSelectColumns, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}
