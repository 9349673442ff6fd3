package directory

import (
	"context"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/vendor"
)

type VendorServiceImpl struct {
	vendor.VendorRepository
	paymentRepo vendor.PaymentRepository
}

func NewVendorService(vendorRepo vendor.VendorRepository, paymentRepo vendor.PaymentRepository) vendor.VendorService {
	return &VendorServiceImpl{
		VendorRepository: vendorRepo,
		paymentRepo:      paymentRepo,
	}
}

// CreateVendor implements vendor.VendorService.
func (s *VendorServiceImpl) CreateVendor(ctx context.Context, req vendor.CreateVendorRequest) (vendor.VendorResponse, error) {
	if err := req.Validate(); err != nil {
		return vendor.VendorResponse{}, err
	}

	v, err := s.VendorRepository.Create(ctx, vendor.Vendor{
		Name:         req.Name,
		ContactPhone: req.ContactPhone,
		Status:       vendor.StatusActive,
	})
	if err != nil {
		return vendor.VendorResponse{}, err
	}

	return toVendorResponse(v), nil
}

// GetVendor implements vendor.VendorService.
func (s *VendorServiceImpl) GetVendor(ctx context.Context, id string) (vendor.VendorResponse, error) {
	v, err := s.VendorRepository.GetByID(ctx, id)
	if err != nil {
		return vendor.VendorResponse{}, err
	}
	return toVendorResponse(v), nil
}

// ListVendors implements vendor.VendorService.
func (s *VendorServiceImpl) ListVendors(ctx context.Context, status *string) ([]vendor.VendorResponse, error) {
	var filter *vendor.Status
	if status != nil && *status != "" {
		st := vendor.Status(*status)
		filter = &st
	}

	vendors, err := s.VendorRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]vendor.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, toVendorResponse(v))
	}
	return out, nil
}

// ListPayments implements vendor.VendorService.
func (s *VendorServiceImpl) ListPayments(ctx context.Context, filter vendor.PaymentFilter) ([]vendor.PaymentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var startDate, endDate *time.Time
	if filter.StartDate != nil && *filter.StartDate != "" {
		d, _ := time.Parse(dateLayout, *filter.StartDate)
		startDate = &d
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		d, _ := time.Parse(dateLayout, *filter.EndDate)
		endDate = &d
	}

	payments, err := s.paymentRepo.List(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	out := make([]vendor.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, vendor.PaymentResponse{
			ID:           p.ID,
			VendorID:     p.VendorID,
			VendorName:   p.VendorName,
			CustomerID:   p.CustomerID,
			CustomerName: p.CustomerName,
			Amount:       p.Amount,
			PaymentDate:  p.PaymentDate.Format(dateLayout),
			Notes:        p.Notes,
			CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func toVendorResponse(v vendor.Vendor) vendor.VendorResponse {
	return vendor.VendorResponse{
		ID:           v.ID,
		Name:         v.Name,
		ContactPhone: v.ContactPhone,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}
