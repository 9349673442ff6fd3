package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/report"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// ListScheduledShifts implements report.ReportRepository.
func (r *reportRepository) ListScheduledShifts(ctx context.Context, startDate, endDate time.Time) ([]report.ScheduledShiftFact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.date, s.customer_id, s.status
		FROM shift_assignments s
		WHERE s.date >= $1
		  AND s.date <= $2
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled shifts: %w", err)
	}
	defer rows.Close()

	var facts []report.ScheduledShiftFact
	for rows.Next() {
		var f report.ScheduledShiftFact
		if err := rows.Scan(&f.Date, &f.CustomerID, &f.Status); err != nil {
			return nil, fmt.Errorf("failed to scan scheduled shift fact: %w", err)
		}
		facts = append(facts, f)
	}

	return facts, nil
}

// ListAttendanceFacts implements report.ReportRepository.
// The inner join drops records without a parent shift assignment; those
// cannot be attributed to a customer and are excluded from the report.
func (r *reportRepository) ListAttendanceFacts(ctx context.Context, startDate, endDate time.Time) ([]report.AttendanceFact, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.date, s.customer_id, a.status, a.replacement_type IS NOT NULL AS has_replacement
		FROM attendance_records a
		INNER JOIN shift_assignments s ON s.id = a.shift_assignment_id
		WHERE a.date >= $1
		  AND a.date <= $2
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance facts: %w", err)
	}
	defer rows.Close()

	var facts []report.AttendanceFact
	for rows.Next() {
		var f report.AttendanceFact
		if err := rows.Scan(&f.Date, &f.CustomerID, &f.Status, &f.HasReplacement); err != nil {
			return nil, fmt.Errorf("failed to scan attendance fact: %w", err)
		}
		facts = append(facts, f)
	}

	return facts, nil
}
