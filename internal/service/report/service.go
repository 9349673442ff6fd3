package report

import (
	"context"
	"fmt"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/customer"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/report"
)

// Ranges wider than this are almost certainly a typo in the date fields and
// would drag the whole facts table into memory.
const maxReportRangeDays = 366

type ReportServiceImpl struct {
	report.ReportRepository
	customerRepo customer.CustomerRepository
}

func NewReportService(
	reportRepo report.ReportRepository,
	customerRepo customer.CustomerRepository,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepo,
		customerRepo:     customerRepo,
	}
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	if endDate.Sub(startDate) > maxReportRangeDays*24*time.Hour {
		return report.AttendanceReport{}, report.ErrReportRangeTooWide
	}

	active := customer.StatusActive
	customers, err := s.customerRepo.List(ctx, &active)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list active customers: %w", err)
	}
	refs := make([]report.CustomerRef, 0, len(customers))
	for _, c := range customers {
		refs = append(refs, report.CustomerRef{ID: c.ID, Name: c.Name})
	}

	scheduled, err := s.ReportRepository.ListScheduledShifts(ctx, startDate, endDate)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	facts, err := s.ReportRepository.ListAttendanceFacts(ctx, startDate, endDate)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	rows := Aggregate(startDate, endDate, report.Granularity(req.Granularity), refs, scheduled, facts)

	return report.AttendanceReport{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Granularity: req.Granularity,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:        rows,
		Summaries:   Summarize(rows),
	}, nil
}
