package report

import (
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/validator"
)

type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityWeek Granularity = "week"
)

type AttendanceReportRequest struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Granularity string `json:"granularity"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !validator.IsInSlice(r.Granularity, []string{string(GranularityDay), string(GranularityWeek)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "granularity",
			Message: "granularity must be day or week",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Row is one (period-bucket, customer) line of the attendance report.
// Derived on demand, never persisted.
type Row struct {
	BucketDate     string `json:"bucket_date"`
	CustomerID     string `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	ScheduledCount int    `json:"scheduled_count"`
	PresentCount   int    `json:"present_count"`
	AbsentCount    int    `json:"absent_count"`
	ReliefCount    int    `json:"relief_count"`
	AttendanceRate int    `json:"attendance_rate"`
}

// CustomerSummary folds all rows for one customer across the whole range.
// The overall rate is recomputed from the summed counts, not averaged.
type CustomerSummary struct {
	CustomerID     string `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
	ScheduledCount int    `json:"scheduled_count"`
	PresentCount   int    `json:"present_count"`
	AbsentCount    int    `json:"absent_count"`
	ReliefCount    int    `json:"relief_count"`
	OverallRate    int    `json:"overall_rate"`
}

type AttendanceReport struct {
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Granularity string            `json:"granularity"`
	GeneratedAt string            `json:"generated_at"`
	Rows        []Row             `json:"rows"`
	Summaries   []CustomerSummary `json:"summaries"`
}

// ScheduledShiftFact is one shift assignment as read back for aggregation.
// Status is the lifecycle status at read time; a shift that has advanced to
// in_progress or completed was still a scheduled post, so the aggregator
// counts everything except cancelled.
type ScheduledShiftFact struct {
	Date       time.Time
	CustomerID string
	Status     string
}

// AttendanceFact is one attendance record joined to its parent shift's customer.
type AttendanceFact struct {
	Date           time.Time
	CustomerID     string
	Status         string
	HasReplacement bool
}

// CustomerRef names one active customer for the bucket matrix.
type CustomerRef struct {
	ID   string
	Name string
}
