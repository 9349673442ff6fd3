package customer

import (
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/validator"
)

type CreateCustomerRequest struct {
	Name        string  `json:"name"`
	SiteAddress *string `json:"site_address,omitempty"`
}

func (r *CreateCustomerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CustomerResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SiteAddress *string `json:"site_address,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
