package employee

import (
	"github.com/shopspring/decimal"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string           `json:"employee_code"`
	FullName     string           `json:"full_name"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must match GRD-0000",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if r.HourlyRate != nil && r.HourlyRate.Sign() < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string           `json:"id"`
	EmployeeCode string           `json:"employee_code"`
	FullName     string           `json:"full_name"`
	PhoneNumber  *string          `json:"phone_number,omitempty"`
	Status       string           `json:"status"`
	HourlyRate   *decimal.Decimal `json:"hourly_rate,omitempty"`
	CreatedAt    string           `json:"created_at"`
	UpdatedAt    string           `json:"updated_at"`
}
