package http

import (
	"net/http"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/report"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// AttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := report.AttendanceReportRequest{
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		Granularity: q.Get("granularity"),
	}
	if req.Granularity == "" {
		req.Granularity = string(report.GranularityDay)
	}

	result, err := h.reportService.GenerateAttendanceReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
