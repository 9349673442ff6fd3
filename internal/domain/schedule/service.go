package schedule

import "context"

type ScheduleService interface {
	// CreateShiftAssignment books an employee to a customer site for one date
	CreateShiftAssignment(ctx context.Context, req CreateShiftAssignmentRequest) (ShiftAssignmentResponse, error)

	// ListShiftAssignments retrieves shift assignments with filters
	ListShiftAssignments(ctx context.Context, filter ShiftAssignmentFilter) ([]ShiftAssignmentResponse, error)

	// UpdateShiftStatus applies a lifecycle transition to one shift
	UpdateShiftStatus(ctx context.Context, req UpdateShiftStatusRequest) (ShiftAssignmentResponse, error)

	// AdvanceLifecycle moves due shifts to in_progress/completed; run from the cron scheduler
	AdvanceLifecycle(ctx context.Context) error
}
