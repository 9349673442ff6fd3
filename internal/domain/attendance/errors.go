package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrSelfReplacement    = errors.New("an employee cannot be their own replacement")
)
