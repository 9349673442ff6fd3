package response

import (
	"errors"
	"net/http"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/attendance"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/auth"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/customer"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/employee"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/report"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/schedule"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/vendor"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenMissing):
		Unauthorized(w, "Refresh token missing")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Customer domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")

	// Vendor domain errors
	case errors.Is(err, vendor.ErrVendorNotFound):
		NotFound(w, "Vendor not found")
	case errors.Is(err, vendor.ErrVendorInactive):
		BadRequest(w, "Vendor is not active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSelfReplacement):
		BadRequest(w, "An employee cannot be their own replacement", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrShiftAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, schedule.ErrInvalidStatusTransition):
		Conflict(w, "Invalid shift status transition")
	case errors.Is(err, schedule.ErrShiftOverlap):
		Conflict(w, "Employee already has a shift on this date")

	// Report domain errors
	case errors.Is(err, report.ErrReportRangeTooWide):
		BadRequest(w, "Report range must not exceed one year", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
