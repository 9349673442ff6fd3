package schedule

import (
	"context"
	"time"
)

type ShiftAssignmentRepository interface {
	Create(ctx context.Context, shift ShiftAssignment) (ShiftAssignment, error)
	GetByID(ctx context.Context, id string) (ShiftAssignment, error)

	// GetByEmployeeAndDate returns the employee's shift for a date, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*ShiftAssignment, error)

	List(ctx context.Context, filter ShiftAssignmentFilter) ([]ShiftAssignment, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// ListDue returns shifts whose lifecycle status should advance by now:
	// scheduled shifts past their start time and in-progress shifts past their end time.
	ListDue(ctx context.Context, now time.Time) ([]ShiftAssignment, error)
}
