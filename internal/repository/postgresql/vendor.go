package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/vendor"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
)

type vendorRepository struct {
	db *database.DB
}

func NewVendorRepository(db *database.DB) vendor.VendorRepository {
	return &vendorRepository{db: db}
}

// Create implements vendor.VendorRepository.
func (r *vendorRepository) Create(ctx context.Context, v vendor.Vendor) (vendor.Vendor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vendors (name, contact_phone, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		v.Name,
		v.ContactPhone,
		v.Status,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return vendor.Vendor{}, fmt.Errorf("failed to create vendor: %w", err)
	}

	return v, nil
}

// GetByID implements vendor.VendorRepository.
func (r *vendorRepository) GetByID(ctx context.Context, id string) (vendor.Vendor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact_phone, status, created_at, updated_at
		FROM vendors
		WHERE id = $1
	`

	var v vendor.Vendor
	err := q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.ContactPhone, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vendor.Vendor{}, vendor.ErrVendorNotFound
		}
		return vendor.Vendor{}, fmt.Errorf("failed to get vendor by id: %w", err)
	}

	return v, nil
}

// List implements vendor.VendorRepository.
func (r *vendorRepository) List(ctx context.Context, status *vendor.Status) ([]vendor.Vendor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, contact_phone, status, created_at, updated_at
		FROM vendors
	`
	args := []interface{}{}
	if status != nil {
		query += " WHERE status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []vendor.Vendor
	for rows.Next() {
		var v vendor.Vendor
		err := rows.Scan(
			&v.ID, &v.Name, &v.ContactPhone, &v.Status, &v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}

	return vendors, nil
}
