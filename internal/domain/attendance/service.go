package attendance

import "context"

// AttendanceService defines business logic for attendance capture and review.
type AttendanceService interface {
	// Mark records one attendance decision (three-way status selector)
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// BulkMark records many decisions for one date; every item is attempted
	// and a per-item result list is returned
	BulkMark(ctx context.Context, req BulkMarkAttendanceRequest) (BulkMarkResponse, error)

	// UpdateAttendance edits one existing record by id
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single record by id
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// ListAttendance retrieves records with filters and pagination
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}
