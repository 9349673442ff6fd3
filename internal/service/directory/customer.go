package directory

import (
	"context"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/customer"
)

type CustomerServiceImpl struct {
	customer.CustomerRepository
}

func NewCustomerService(customerRepo customer.CustomerRepository) customer.CustomerService {
	return &CustomerServiceImpl{CustomerRepository: customerRepo}
}

// CreateCustomer implements customer.CustomerService.
func (s *CustomerServiceImpl) CreateCustomer(ctx context.Context, req customer.CreateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	cust, err := s.CustomerRepository.Create(ctx, customer.Customer{
		Name:        req.Name,
		SiteAddress: req.SiteAddress,
		Status:      customer.StatusActive,
	})
	if err != nil {
		return customer.CustomerResponse{}, err
	}

	return toCustomerResponse(cust), nil
}

// GetCustomer implements customer.CustomerService.
func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, id string) (customer.CustomerResponse, error) {
	cust, err := s.CustomerRepository.GetByID(ctx, id)
	if err != nil {
		return customer.CustomerResponse{}, err
	}
	return toCustomerResponse(cust), nil
}

// ListCustomers implements customer.CustomerService.
func (s *CustomerServiceImpl) ListCustomers(ctx context.Context, status *string) ([]customer.CustomerResponse, error) {
	var filter *customer.Status
	if status != nil && *status != "" {
		st := customer.Status(*status)
		filter = &st
	}

	customers, err := s.CustomerRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]customer.CustomerResponse, 0, len(customers))
	for _, cust := range customers {
		out = append(out, toCustomerResponse(cust))
	}
	return out, nil
}

func toCustomerResponse(cust customer.Customer) customer.CustomerResponse {
	return customer.CustomerResponse{
		ID:          cust.ID,
		Name:        cust.Name,
		SiteAddress: cust.SiteAddress,
		Status:      string(cust.Status),
		CreatedAt:   cust.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   cust.UpdatedAt.Format(time.RFC3339),
	}
}
