package report

import (
	"context"
	"time"
)

// ReportRepository reads the raw facts the aggregator rolls up.
type ReportRepository interface {
	// ListScheduledShifts returns one fact per shift assignment whose date
	// falls inside the range (inclusive), whatever its lifecycle status.
	ListScheduledShifts(ctx context.Context, startDate, endDate time.Time) ([]ScheduledShiftFact, error)

	// ListAttendanceFacts returns one fact per attendance record in range
	// whose parent shift assignment resolves to a customer.
	ListAttendanceFacts(ctx context.Context, startDate, endDate time.Time) ([]AttendanceFact, error)
}
