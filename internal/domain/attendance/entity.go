package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is the realized outcome for one employee on one date.
// At most one record exists per (employee, date); the persistence layer
// enforces this with a unique constraint and the write path upserts on it.
type Record struct {
	ID                string
	EmployeeID        string
	ShiftAssignmentID *string
	Date              time.Time
	Status            Status
	CheckIn           *string
	CheckOut          *string
	HoursWorked       *float64
	Notes             *string

	// Replacement fields, meaningful only when Status is absent.
	// Vendor and employee relief are mutually exclusive.
	ReplacementType       *ReplacementType
	ReplacementVendorID   *string
	ReplacementEmployeeID *string
	ReplacementNotes      *string
	Overtime              bool
	RelievingCost         *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	CustomerName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

type ReplacementType string

const (
	ReplacementVendor   ReplacementType = "vendor"
	ReplacementEmployee ReplacementType = "employee"
)

// ApplyPresentFlag returns the status after toggling the "present" checkbox.
// Checking it forces present; unchecking clears the status only if present
// was the current value.
func ApplyPresentFlag(current Status, checked bool) Status {
	if checked {
		return StatusPresent
	}
	if current == StatusPresent {
		return ""
	}
	return current
}

// ApplyAbsentFlag is the absent-checkbox counterpart of ApplyPresentFlag.
func ApplyAbsentFlag(current Status, checked bool) Status {
	if checked {
		return StatusAbsent
	}
	if current == StatusAbsent {
		return ""
	}
	return current
}

// StatusFromFlags collapses the two bulk-form booleans into a status.
// ok is false when no status is set (the employee is skipped) or when both
// flags are set, which the checkbox reducers make unrepresentable.
func StatusFromFlags(isPresent, isAbsent bool) (Status, bool) {
	switch {
	case isPresent && isAbsent:
		return "", false
	case isPresent:
		return StatusPresent, true
	case isAbsent:
		return StatusAbsent, true
	default:
		return "", false
	}
}

// Flags projects a status back onto the two checkbox booleans.
func Flags(s Status) (isPresent, isAbsent bool) {
	return s == StatusPresent, s == StatusAbsent
}
