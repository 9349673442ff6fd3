package report

import "context"

type ReportService interface {
	// GenerateAttendanceReport rolls scheduled shifts and attendance records
	// up into per-(bucket, customer) rows plus per-customer summaries
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
}
