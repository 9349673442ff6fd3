package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees filters by status when one is given ("active"/"inactive")
	ListEmployees(ctx context.Context, status *string) ([]EmployeeResponse, error)
}
