package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/customer"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
)

type customerRepository struct {
	db *database.DB
}

func NewCustomerRepository(db *database.DB) customer.CustomerRepository {
	return &customerRepository{db: db}
}

// Create implements customer.CustomerRepository.
func (r *customerRepository) Create(ctx context.Context, cust customer.Customer) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO customers (name, site_address, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		cust.Name,
		cust.SiteAddress,
		cust.Status,
	).Scan(&cust.ID, &cust.CreatedAt, &cust.UpdatedAt)
	if err != nil {
		return customer.Customer{}, fmt.Errorf("failed to create customer: %w", err)
	}

	return cust, nil
}

// GetByID implements customer.CustomerRepository.
func (r *customerRepository) GetByID(ctx context.Context, id string) (customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, site_address, status, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var cust customer.Customer
	err := q.QueryRow(ctx, query, id).Scan(
		&cust.ID, &cust.Name, &cust.SiteAddress, &cust.Status, &cust.CreatedAt, &cust.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return customer.Customer{}, customer.ErrCustomerNotFound
		}
		return customer.Customer{}, fmt.Errorf("failed to get customer by id: %w", err)
	}

	return cust, nil
}

// List implements customer.CustomerRepository.
func (r *customerRepository) List(ctx context.Context, status *customer.Status) ([]customer.Customer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, site_address, status, created_at, updated_at
		FROM customers
	`
	args := []interface{}{}
	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []customer.Customer
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.ID, &cust.Name, &cust.SiteAddress, &cust.Status, &cust.CreatedAt, &cust.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, cust)
	}

	return customers, nil
}
