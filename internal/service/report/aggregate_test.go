package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/report"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/schedule"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

var testCustomers = []report.CustomerRef{
	{ID: "cus-1", Name: "Astra Tower"},
	{ID: "cus-2", Name: "Bintang Mall"},
}

func TestRate(t *testing.T) {
	cases := []struct {
		name      string
		scheduled int
		present   int
		relief    int
		want      int
	}{
		{"relief counts toward coverage", 10, 7, 2, 90},
		{"fully covered", 10, 10, 0, 100},
		{"rounds to nearest", 3, 2, 0, 67},
		{"zero scheduled yields zero", 0, 5, 0, 0},
		{"relief can fully cover", 4, 0, 4, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Rate(c.scheduled, c.present, c.relief))
		})
	}
}

func TestAggregateDailyCounts(t *testing.T) {
	scheduled := []report.ScheduledShiftFact{
		{Date: date("2026-03-02"), CustomerID: "cus-1"},
		{Date: date("2026-03-02"), CustomerID: "cus-1"},
		{Date: date("2026-03-02"), CustomerID: "cus-1"},
		{Date: date("2026-03-03"), CustomerID: "cus-2"},
	}
	attendance := []report.AttendanceFact{
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: "present"},
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: "present"},
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: "absent", HasReplacement: true},
		{Date: date("2026-03-03"), CustomerID: "cus-2", Status: "absent"},
	}

	rows := Aggregate(date("2026-03-02"), date("2026-03-03"), report.GranularityDay, testCustomers, scheduled, attendance)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "2026-03-02", first.BucketDate)
	assert.Equal(t, "Astra Tower", first.CustomerName)
	assert.Equal(t, 3, first.ScheduledCount)
	assert.Equal(t, 2, first.PresentCount)
	assert.Equal(t, 1, first.AbsentCount)
	assert.Equal(t, 1, first.ReliefCount)
	assert.Equal(t, 100, first.AttendanceRate)

	second := rows[1]
	assert.Equal(t, "2026-03-03", second.BucketDate)
	assert.Equal(t, "Bintang Mall", second.CustomerName)
	assert.Equal(t, 1, second.ScheduledCount)
	assert.Equal(t, 1, second.AbsentCount)
	assert.Equal(t, 0, second.ReliefCount)
	assert.Equal(t, 0, second.AttendanceRate)
}

func TestAggregateExcludesZeroScheduledRows(t *testing.T) {
	scheduled := []report.ScheduledShiftFact{
		{Date: date("2026-03-02"), CustomerID: "cus-1"},
	}
	attendance := []report.AttendanceFact{
		// cus-2 has attendance noise but nothing scheduled.
		{Date: date("2026-03-02"), CustomerID: "cus-2", Status: "present"},
	}

	rows := Aggregate(date("2026-03-02"), date("2026-03-04"), report.GranularityDay, testCustomers, scheduled, attendance)
	require.Len(t, rows, 1)
	assert.Equal(t, "cus-1", rows[0].CustomerID)
}

func TestAggregateWeeklyBucketsStartOnMonday(t *testing.T) {
	// 2026-03-04 is a Wednesday; its week bucket starts on Monday 2026-03-02.
	scheduled := []report.ScheduledShiftFact{
		{Date: date("2026-03-04"), CustomerID: "cus-1"},
		{Date: date("2026-03-06"), CustomerID: "cus-1"},
		{Date: date("2026-03-09"), CustomerID: "cus-1"}, // next week
	}
	attendance := []report.AttendanceFact{
		{Date: date("2026-03-04"), CustomerID: "cus-1", Status: "present"},
		{Date: date("2026-03-06"), CustomerID: "cus-1", Status: "present"},
	}

	rows := Aggregate(date("2026-03-02"), date("2026-03-15"), report.GranularityWeek, testCustomers, scheduled, attendance)
	require.Len(t, rows, 2)

	assert.Equal(t, "2026-03-02", rows[0].BucketDate)
	assert.Equal(t, 2, rows[0].ScheduledCount)
	assert.Equal(t, 2, rows[0].PresentCount)
	assert.Equal(t, 100, rows[0].AttendanceRate)

	assert.Equal(t, "2026-03-09", rows[1].BucketDate)
	assert.Equal(t, 1, rows[1].ScheduledCount)
	assert.Equal(t, 0, rows[1].AttendanceRate)
}

func TestAggregateSortsByBucketThenCustomerName(t *testing.T) {
	scheduled := []report.ScheduledShiftFact{
		{Date: date("2026-03-03"), CustomerID: "cus-1"},
		{Date: date("2026-03-02"), CustomerID: "cus-2"},
		{Date: date("2026-03-02"), CustomerID: "cus-1"},
	}

	rows := Aggregate(date("2026-03-02"), date("2026-03-03"), report.GranularityDay, testCustomers, scheduled, nil)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"2026-03-02", "2026-03-02", "2026-03-03"},
		[]string{rows[0].BucketDate, rows[1].BucketDate, rows[2].BucketDate})
	assert.Equal(t, "Astra Tower", rows[0].CustomerName)
	assert.Equal(t, "Bintang Mall", rows[1].CustomerName)
}

func TestAggregateCountsLifecycleAdvancedShiftsAsScheduled(t *testing.T) {
	// Historical shifts have long been moved to completed by the lifecycle
	// job; they still count toward the scheduled denominator. Only a
	// cancelled shift drops out.
	scheduled := []report.ScheduledShiftFact{
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: string(schedule.StatusCompleted)},
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: string(schedule.StatusInProgress)},
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: string(schedule.StatusScheduled)},
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: string(schedule.StatusCancelled)},
		{Date: date("2026-03-03"), CustomerID: "cus-2", Status: string(schedule.StatusCancelled)},
	}
	attendance := []report.AttendanceFact{
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: "present"},
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: "present"},
		{Date: date("2026-03-02"), CustomerID: "cus-1", Status: "absent"},
	}

	rows := Aggregate(date("2026-03-02"), date("2026-03-03"), report.GranularityDay, testCustomers, scheduled, attendance)
	require.Len(t, rows, 1, "a day with only cancelled shifts has no row")

	row := rows[0]
	assert.Equal(t, "cus-1", row.CustomerID)
	assert.Equal(t, 3, row.ScheduledCount, "completed and in-progress shifts stay in the denominator")
	assert.Equal(t, 2, row.PresentCount)
	assert.Equal(t, 67, row.AttendanceRate)
}

func TestAggregateCountsDeactivatedCustomerFacts(t *testing.T) {
	// Shift booked for a customer that is no longer in the active set.
	scheduled := []report.ScheduledShiftFact{
		{Date: date("2026-03-02"), CustomerID: "cus-gone"},
	}

	rows := Aggregate(date("2026-03-02"), date("2026-03-02"), report.GranularityDay, testCustomers, scheduled, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "cus-gone", rows[0].CustomerID)
	assert.Equal(t, 1, rows[0].ScheduledCount)
}

func TestSummarizeRecomputesRateFromSummedCounts(t *testing.T) {
	rows := []report.Row{
		{BucketDate: "2026-03-02", CustomerID: "cus-1", CustomerName: "Astra Tower",
			ScheduledCount: 10, PresentCount: 7, AbsentCount: 3, ReliefCount: 2},
		{BucketDate: "2026-03-03", CustomerID: "cus-1", CustomerName: "Astra Tower",
			ScheduledCount: 2, PresentCount: 0, AbsentCount: 2, ReliefCount: 0},
		{BucketDate: "2026-03-02", CustomerID: "cus-2", CustomerName: "Bintang Mall",
			ScheduledCount: 4, PresentCount: 4},
	}

	summaries := Summarize(rows)
	require.Len(t, summaries, 2)

	astra := summaries[0]
	assert.Equal(t, "Astra Tower", astra.CustomerName)
	assert.Equal(t, 12, astra.ScheduledCount)
	assert.Equal(t, 7, astra.PresentCount)
	assert.Equal(t, 5, astra.AbsentCount)
	assert.Equal(t, 2, astra.ReliefCount)
	// (7+2)/12 = 75%. Averaging the per-row rates (90% and 0%) would give 45.
	assert.Equal(t, 75, astra.OverallRate)

	assert.Equal(t, 100, summaries[1].OverallRate)
}

func TestSummarizeEmptyInput(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}
