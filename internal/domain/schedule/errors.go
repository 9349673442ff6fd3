package schedule

import "errors"

// Schedule domain errors
var (
	ErrShiftAssignmentNotFound = errors.New("shift assignment not found")
	ErrInvalidStatusTransition = errors.New("invalid shift status transition")
	ErrShiftOverlap            = errors.New("employee already has a shift on this date")
)
