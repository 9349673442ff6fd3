package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Upsert writes one record keyed on (employee_id, date); an existing
	// record for that pair is overwritten. Repeated submissions are idempotent.
	Upsert(ctx context.Context, rec Record) (Record, error)

	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns nil without error when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Update rewrites an existing record by id (the edit flow).
	Update(ctx context.Context, rec Record) error

	List(ctx context.Context, filter AttendanceFilter) ([]Record, int64, error)
}
