package schedule

import "time"

// ShiftAssignment is a planned employee-to-customer-site booking for one date.
// Start and end times are wall-clock "HH:MM" values at the site.
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	CustomerID string
	Date       time.Time
	StartTime  string
	EndTime    string
	Location   *string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	CustomerName *string
}

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidTransition reports whether a lifecycle move is allowed.
// Cancelled and completed are terminal.
func ValidTransition(from, to Status) bool {
	switch from {
	case StatusScheduled:
		return to == StatusInProgress || to == StatusCompleted || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}
