package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/vendor"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
)

type vendorPaymentRepository struct {
	db *database.DB
}

func NewVendorPaymentRepository(db *database.DB) vendor.PaymentRepository {
	return &vendorPaymentRepository{db: db}
}

// Create implements vendor.PaymentRepository.
func (r *vendorPaymentRepository) Create(ctx context.Context, p vendor.Payment) (vendor.Payment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vendor_payments (vendor_id, customer_id, amount, payment_date, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		p.VendorID,
		p.CustomerID,
		p.Amount,
		p.PaymentDate,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return vendor.Payment{}, fmt.Errorf("failed to create vendor payment: %w", err)
	}

	return p, nil
}

// List implements vendor.PaymentRepository.
func (r *vendorPaymentRepository) List(ctx context.Context, startDate, endDate *time.Time) ([]vendor.Payment, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if startDate != nil {
		baseWhere += fmt.Sprintf(" AND p.payment_date >= $%d", argIdx)
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil {
		baseWhere += fmt.Sprintf(" AND p.payment_date <= $%d", argIdx)
		args = append(args, *endDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.vendor_id, p.customer_id, p.amount, p.payment_date, p.notes, p.created_at,
			   v.name AS vendor_name,
			   c.name AS customer_name
		FROM vendor_payments p
		LEFT JOIN vendors v ON v.id = p.vendor_id
		LEFT JOIN customers c ON c.id = p.customer_id
		WHERE %s
		ORDER BY p.payment_date DESC, p.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor payments: %w", err)
	}
	defer rows.Close()

	var payments []vendor.Payment
	for rows.Next() {
		var p vendor.Payment
		err := rows.Scan(
			&p.ID, &p.VendorID, &p.CustomerID, &p.Amount, &p.PaymentDate, &p.Notes, &p.CreatedAt,
			&p.VendorName, &p.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, nil
}
