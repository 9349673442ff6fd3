package customer

import "context"

type CustomerRepository interface {
	Create(ctx context.Context, cust Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context, status *Status) ([]Customer, error)
}
