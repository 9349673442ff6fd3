package attendance

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ReplacementInput carries the relief assignment for an absent employee.
type ReplacementInput struct {
	Type       string           `json:"type"`
	VendorID   *string          `json:"vendor_id,omitempty"`
	EmployeeID *string          `json:"employee_id,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	Overtime   bool             `json:"overtime"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
}

// Validate checks the replacement block against the employee being replaced.
func (r *ReplacementInput) Validate(absentEmployeeID string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	switch r.Type {
	case string(ReplacementVendor):
		if r.VendorID == nil || validator.IsEmpty(*r.VendorID) {
			errs = append(errs, validator.ValidationError{
				Field:   "replacement.vendor_id",
				Message: "vendor_id is required for vendor replacement",
			})
		}
		if r.EmployeeID != nil && !validator.IsEmpty(*r.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "replacement.employee_id",
				Message: "employee_id must be empty for vendor replacement",
			})
		}
	case string(ReplacementEmployee):
		if r.EmployeeID == nil || validator.IsEmpty(*r.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "replacement.employee_id",
				Message: "employee_id is required for employee replacement",
			})
		} else if *r.EmployeeID == absentEmployeeID {
			errs = append(errs, validator.ValidationError{
				Field:   "replacement.employee_id",
				Message: ErrSelfReplacement.Error(),
			})
		}
		if r.VendorID != nil && !validator.IsEmpty(*r.VendorID) {
			errs = append(errs, validator.ValidationError{
				Field:   "replacement.vendor_id",
				Message: "vendor_id must be empty for employee replacement",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "replacement.type",
			Message: "type must be vendor or employee",
		})
	}

	if r.Cost != nil && r.Cost.Sign() <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "replacement.cost",
			Message: "cost must be a positive amount",
		})
	}

	return errs
}

// MarkAttendanceRequest records one attendance decision with a direct
// three-way status selector.
type MarkAttendanceRequest struct {
	EmployeeID  string            `json:"employee_id"`
	Date        string            `json:"date"`
	Status      string            `json:"status"`
	CheckIn     *string           `json:"check_in,omitempty"`
	CheckOut    *string           `json:"check_out,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	Replacement *ReplacementInput `json:"replacement,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	allowed := []string{string(StatusPresent), string(StatusLate), string(StatusAbsent)}
	if !validator.IsInSlice(r.Status, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present, late or absent",
		})
	}

	errs = append(errs, validateClockTimes(r.CheckIn, r.CheckOut)...)

	if r.Replacement != nil {
		if r.Status != string(StatusAbsent) {
			errs = append(errs, validator.ValidationError{
				Field:   "replacement",
				Message: "replacement is only allowed when status is absent",
			})
		} else {
			errs = append(errs, r.Replacement.Validate(r.EmployeeID)...)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkItem is one employee's row from the bulk marking form. Status is
// carried as the two checkbox booleans the form renders; they are collapsed
// to a single status on submit and an unset row is skipped.
type BulkMarkItem struct {
	EmployeeID  string            `json:"employee_id"`
	IsPresent   bool              `json:"is_present"`
	IsAbsent    bool              `json:"is_absent"`
	CheckIn     *string           `json:"check_in,omitempty"`
	CheckOut    *string           `json:"check_out,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	Replacement *ReplacementInput `json:"replacement,omitempty"`
}

type BulkMarkAttendanceRequest struct {
	Date       string         `json:"date"`
	CustomerID *string        `json:"customer_id,omitempty"`
	Items      []BulkMarkItem `json:"items"`
}

func (r *BulkMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one item is required",
		})
	}

	for i, item := range r.Items {
		prefix := "items[" + strconv.Itoa(i) + "]."
		if validator.IsEmpty(item.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "employee_id",
				Message: "employee_id is required",
			})
		}
		if item.IsPresent && item.IsAbsent {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "status",
				Message: "an employee cannot be both present and absent",
			})
		}
		for _, ce := range validateClockTimes(item.CheckIn, item.CheckOut) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + ce.Field,
				Message: ce.Message,
			})
		}
		if item.Replacement != nil {
			if !item.IsAbsent {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + "replacement",
					Message: "replacement is only allowed when status is absent",
				})
			} else {
				for _, re := range item.Replacement.Validate(item.EmployeeID) {
					errs = append(errs, validator.ValidationError{
						Field:   prefix + re.Field,
						Message: re.Message,
					})
				}
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest edits one existing record by id. The date is
// immutable once a record exists; everything else can be corrected.
type UpdateAttendanceRequest struct {
	ID          string            `json:"-"`
	Status      *string           `json:"status,omitempty"`
	CheckIn     *string           `json:"check_in,omitempty"`
	CheckOut    *string           `json:"check_out,omitempty"`
	Notes       *string           `json:"notes,omitempty"`
	Replacement *ReplacementInput `json:"replacement,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != nil {
		allowed := []string{string(StatusPresent), string(StatusLate), string(StatusAbsent)}
		if !validator.IsInSlice(*r.Status, allowed) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be present, late or absent",
			})
		}
	}

	errs = append(errs, validateClockTimes(r.CheckIn, r.CheckOut)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateClockTimes(checkIn, checkOut *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if checkIn != nil && !validator.IsEmpty(*checkIn) {
		if _, ok := validator.IsValidClockTime(*checkIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be in HH:MM format",
			})
		}
	}
	if checkOut != nil && !validator.IsEmpty(*checkOut) {
		if _, ok := validator.IsValidClockTime(*checkOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be in HH:MM format",
			})
		}
	}
	return errs
}

type AttendanceFilter struct {
	EmployeeID *string
	CustomerID *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Status     *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.Status != nil && *f.Status != "" {
		allowed := []string{string(StatusPresent), string(StatusLate), string(StatusAbsent)}
		if !validator.IsInSlice(*f.Status, allowed) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be present, late or absent",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReplacementResponse struct {
	Type       string           `json:"type"`
	VendorID   *string          `json:"vendor_id,omitempty"`
	EmployeeID *string          `json:"employee_id,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	Overtime   bool             `json:"overtime"`
	Cost       *decimal.Decimal `json:"cost,omitempty"`
}

type AttendanceResponse struct {
	ID           string               `json:"id"`
	EmployeeID   string               `json:"employee_id"`
	EmployeeName string               `json:"employee_name,omitempty"`
	CustomerName *string              `json:"customer_name,omitempty"`
	Date         string               `json:"date"`
	Status       string               `json:"status"`
	IsPresent    bool                 `json:"is_present"`
	IsAbsent     bool                 `json:"is_absent"`
	CheckIn      *string              `json:"check_in,omitempty"`
	CheckOut     *string              `json:"check_out,omitempty"`
	HoursWorked  *float64             `json:"hours_worked,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	Replacement  *ReplacementResponse `json:"replacement,omitempty"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// BulkItemOutcome classifies what happened to one bulk item.
type BulkItemOutcome string

const (
	OutcomeSaved   BulkItemOutcome = "saved"
	OutcomeSkipped BulkItemOutcome = "skipped"
	OutcomeFailed  BulkItemOutcome = "failed"
)

// BulkMarkResult is the per-employee result of a bulk submission. Every item
// is attempted; one failure never stops the rest of the batch.
type BulkMarkResult struct {
	EmployeeID     string          `json:"employee_id"`
	Outcome        BulkItemOutcome `json:"outcome"`
	AttendanceID   *string         `json:"attendance_id,omitempty"`
	PaymentCreated bool            `json:"payment_created"`
	PaymentError   *string         `json:"payment_error,omitempty"`
	Error          *string         `json:"error,omitempty"`
}

type BulkMarkResponse struct {
	Date    string           `json:"date"`
	Saved   int              `json:"saved"`
	Skipped int              `json:"skipped"`
	Failed  int              `json:"failed"`
	Results []BulkMarkResult `json:"results"`
}
