package report

import (
	"math"
	"sort"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/report"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/schedule"
)

const dateLayout = "2006-01-02"

type bucketKey struct {
	bucket     string
	customerID string
}

// Aggregate rolls scheduled-shift and attendance facts up into one row per
// (period bucket, customer). The full bucket×customer matrix is initialized
// to zero counts first so facts land on preallocated cells; rows that saw no
// scheduled shifts are dropped from the output afterwards.
func Aggregate(
	startDate, endDate time.Time,
	granularity report.Granularity,
	customers []report.CustomerRef,
	scheduled []report.ScheduledShiftFact,
	attendance []report.AttendanceFact,
) []report.Row {
	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}

	cells := make(map[bucketKey]*report.Row)
	for _, b := range buckets(startDate, endDate, granularity) {
		for _, c := range customers {
			key := bucketKey{bucket: b, customerID: c.ID}
			cells[key] = &report.Row{
				BucketDate:   b,
				CustomerID:   c.ID,
				CustomerName: c.Name,
			}
		}
	}

	cell := func(date time.Time, customerID string) *report.Row {
		key := bucketKey{bucket: bucketStart(date, granularity).Format(dateLayout), customerID: customerID}
		row, ok := cells[key]
		if !ok {
			// A fact for a customer outside the active set (deactivated since
			// the shift was booked) still gets counted.
			row = &report.Row{
				BucketDate:   key.bucket,
				CustomerID:   customerID,
				CustomerName: names[customerID],
			}
			cells[key] = row
		}
		return row
	}

	for _, f := range scheduled {
		// The lifecycle cron moves past shifts through in_progress to
		// completed; those were still scheduled posts. Only a cancellation
		// removes a shift from the denominator.
		if f.Status == string(schedule.StatusCancelled) {
			continue
		}
		cell(f.Date, f.CustomerID).ScheduledCount++
	}

	for _, f := range attendance {
		row := cell(f.Date, f.CustomerID)
		switch f.Status {
		case "present":
			row.PresentCount++
		case "absent":
			row.AbsentCount++
			if f.HasReplacement {
				row.ReliefCount++
			}
		}
	}

	rows := make([]report.Row, 0, len(cells))
	for _, row := range cells {
		if row.ScheduledCount == 0 {
			continue
		}
		row.AttendanceRate = Rate(row.ScheduledCount, row.PresentCount, row.ReliefCount)
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].BucketDate != rows[j].BucketDate {
			return rows[i].BucketDate < rows[j].BucketDate
		}
		return rows[i].CustomerName < rows[j].CustomerName
	})

	return rows
}

// Summarize folds report rows into one summary per customer across the whole
// range. The overall rate is recomputed from the summed counts; averaging the
// per-row rates would weight small buckets the same as large ones.
func Summarize(rows []report.Row) []report.CustomerSummary {
	byCustomer := make(map[string]*report.CustomerSummary)
	for _, row := range rows {
		s, ok := byCustomer[row.CustomerID]
		if !ok {
			s = &report.CustomerSummary{
				CustomerID:   row.CustomerID,
				CustomerName: row.CustomerName,
			}
			byCustomer[row.CustomerID] = s
		}
		s.ScheduledCount += row.ScheduledCount
		s.PresentCount += row.PresentCount
		s.AbsentCount += row.AbsentCount
		s.ReliefCount += row.ReliefCount
	}

	summaries := make([]report.CustomerSummary, 0, len(byCustomer))
	for _, s := range byCustomer {
		s.OverallRate = Rate(s.ScheduledCount, s.PresentCount, s.ReliefCount)
		summaries = append(summaries, *s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CustomerName < summaries[j].CustomerName
	})

	return summaries
}

// Rate is the covered-shift percentage: relief counts toward coverage because
// the post was manned even though the rostered guard was absent.
func Rate(scheduled, present, relief int) int {
	if scheduled == 0 {
		return 0
	}
	return int(math.Round(float64(present+relief) / float64(scheduled) * 100))
}

// bucketStart maps a date onto its period bucket: the date itself for daily
// granularity, the Monday of its week for weekly.
func bucketStart(d time.Time, g report.Granularity) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	if g == report.GranularityWeek {
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	}
	return d
}

// buckets enumerates every bucket start date covering [startDate, endDate].
func buckets(startDate, endDate time.Time, g report.Granularity) []string {
	step := 1
	if g == report.GranularityWeek {
		step = 7
	}

	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, time.UTC)
	var out []string
	for d := bucketStart(startDate, g); !d.After(end); d = d.AddDate(0, 0, step) {
		out = append(out, d.Format(dateLayout))
	}
	return out
}
