package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/attendance"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/employee"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/schedule"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/vendor"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/sse"
)

// ---------- in-memory fakes ----------

type fakeAttendanceRepo struct {
	records map[string]attendance.Record // keyed by id
	byKey   map[string]string            // employee|date -> id
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		records: make(map[string]attendance.Record),
		byKey:   make(map[string]string),
	}
}

func attendanceKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	key := attendanceKey(rec.EmployeeID, rec.Date)
	now := time.Now()
	if id, ok := f.byKey[key]; ok {
		existing := f.records[id]
		rec.ID = existing.ID
		rec.CreatedAt = existing.CreatedAt
		rec.UpdatedAt = now.Add(time.Second)
	} else {
		f.seq++
		rec.ID = fmt.Sprintf("att-%d", f.seq)
		rec.CreatedAt = now
		rec.UpdatedAt = now
		f.byKey[key] = rec.ID
	}
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	id, ok := f.byKey[attendanceKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	rec := f.records[id]
	return &rec, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, rec attendance.Record) error {
	existing, ok := f.records[rec.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().Add(time.Second)
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, int64(len(out)), nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ *employee.Status) ([]employee.Employee, error) {
	return nil, nil
}

type fakeVendorRepo struct {
	vendors map[string]vendor.Vendor
}

func (f *fakeVendorRepo) Create(_ context.Context, v vendor.Vendor) (vendor.Vendor, error) {
	f.vendors[v.ID] = v
	return v, nil
}

func (f *fakeVendorRepo) GetByID(_ context.Context, id string) (vendor.Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return vendor.Vendor{}, vendor.ErrVendorNotFound
	}
	return v, nil
}

func (f *fakeVendorRepo) List(_ context.Context, _ *vendor.Status) ([]vendor.Vendor, error) {
	return nil, nil
}

type fakePaymentRepo struct {
	payments []vendor.Payment
	failWith error
}

func (f *fakePaymentRepo) Create(_ context.Context, p vendor.Payment) (vendor.Payment, error) {
	if f.failWith != nil {
		return vendor.Payment{}, f.failWith
	}
	p.ID = fmt.Sprintf("pay-%d", len(f.payments)+1)
	f.payments = append(f.payments, p)
	return p, nil
}

func (f *fakePaymentRepo) List(_ context.Context, _, _ *time.Time) ([]vendor.Payment, error) {
	return f.payments, nil
}

type fakeShiftRepo struct {
	shifts map[string]schedule.ShiftAssignment // employee|date -> shift
}

func (f *fakeShiftRepo) Create(_ context.Context, s schedule.ShiftAssignment) (schedule.ShiftAssignment, error) {
	return s, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, _ string) (schedule.ShiftAssignment, error) {
	return schedule.ShiftAssignment{}, schedule.ErrShiftAssignmentNotFound
}

func (f *fakeShiftRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*schedule.ShiftAssignment, error) {
	s, ok := f.shifts[attendanceKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeShiftRepo) List(_ context.Context, _ schedule.ShiftAssignmentFilter) ([]schedule.ShiftAssignment, error) {
	return nil, nil
}

func (f *fakeShiftRepo) UpdateStatus(_ context.Context, _ string, _ schedule.Status) error {
	return nil
}

func (f *fakeShiftRepo) ListDue(_ context.Context, _ time.Time) ([]schedule.ShiftAssignment, error) {
	return nil, nil
}

// ---------- fixture ----------

type fixture struct {
	svc         attendance.AttendanceService
	attendances *fakeAttendanceRepo
	payments    *fakePaymentRepo
	shifts      *fakeShiftRepo
	txCalls     int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	attendances := newFakeAttendanceRepo()
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmployeeCode: "GRD-0001", FullName: "Budi Santoso", Status: employee.StatusActive},
		"emp-2": {ID: "emp-2", EmployeeCode: "GRD-0002", FullName: "Agus Wijaya", Status: employee.StatusActive},
		"emp-3": {ID: "emp-3", EmployeeCode: "GRD-0003", FullName: "Retired Guard", Status: employee.StatusInactive},
	}}
	vendors := &fakeVendorRepo{vendors: map[string]vendor.Vendor{
		"ven-1": {ID: "ven-1", Name: "PT Relief Sentinel", Status: vendor.StatusActive},
		"ven-2": {ID: "ven-2", Name: "PT Closed Down", Status: vendor.StatusInactive},
	}}
	payments := &fakePaymentRepo{}
	shifts := &fakeShiftRepo{shifts: map[string]schedule.ShiftAssignment{
		"emp-1|2026-03-02": {ID: "shift-1", EmployeeID: "emp-1", CustomerID: "cus-1", Status: schedule.StatusScheduled},
		"emp-2|2026-03-02": {ID: "shift-2", EmployeeID: "emp-2", CustomerID: "cus-1", Status: schedule.StatusScheduled},
	}}

	f := &fixture{
		attendances: attendances,
		payments:    payments,
		shifts:      shifts,
	}

	svc := NewAttendanceService(nil, attendances, employees, vendors, payments, shifts, sse.NewHub()).(*AttendanceServiceImpl)
	svc.runInTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		f.txCalls++
		return fn(ctx)
	}
	f.svc = svc

	return f
}

func strPtr(s string) *string { return &s }

// ---------- tests ----------

func TestMarkComputesHoursAndLinksShift(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		Status:     "present",
		CheckIn:    strPtr("08:00"),
		CheckOut:   strPtr("20:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.True(t, resp.IsPresent)
	assert.False(t, resp.IsAbsent)
	require.NotNil(t, resp.HoursWorked)
	assert.Equal(t, 12.0, *resp.HoursWorked)

	rec, err := f.attendances.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	require.NotNil(t, rec.ShiftAssignmentID)
	assert.Equal(t, "shift-1", *rec.ShiftAssignmentID)
}

func TestMarkIsIdempotentPerEmployeeAndDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2026-03-02", Status: "present",
	})
	require.NoError(t, err)

	second, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2026-03-02", Status: "late",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same employee and date must reuse the record")
	assert.Equal(t, "late", second.Status)
	assert.Len(t, f.attendances.records, 1)
}

func TestMarkUnknownEmployeeFails(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-404", Date: "2026-03-02", Status: "present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMarkRejectsSelfReplacement(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		Status:     "absent",
		Replacement: &attendance.ReplacementInput{
			Type:       "employee",
			EmployeeID: strPtr("emp-1"),
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "own replacement")
}

func TestMarkRejectsInactiveReplacementEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		Status:     "absent",
		Replacement: &attendance.ReplacementInput{
			Type:       "employee",
			EmployeeID: strPtr("emp-3"),
		},
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestMarkVendorReliefCreatesOnePayment(t *testing.T) {
	f := newFixture(t)
	cost := decimal.NewFromInt(350000)

	resp, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		Status:     "absent",
		Replacement: &attendance.ReplacementInput{
			Type:     "vendor",
			VendorID: strPtr("ven-1"),
			Cost:     &cost,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Replacement)
	assert.Equal(t, "vendor", resp.Replacement.Type)

	require.Len(t, f.payments.payments, 1)
	p := f.payments.payments[0]
	assert.Equal(t, "ven-1", p.VendorID)
	assert.Equal(t, "cus-1", p.CustomerID, "payment is billed against the shift's customer")
	assert.True(t, cost.Equal(p.Amount))
	require.NotNil(t, p.Notes)
	assert.Contains(t, *p.Notes, "Budi Santoso", "payment note names the replaced employee")
}

func TestMarkVendorReliefWithoutShiftSkipsPayment(t *testing.T) {
	f := newFixture(t)
	cost := decimal.NewFromInt(100000)

	// emp-1 has no shift on this date.
	_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-05",
		Status:     "absent",
		Replacement: &attendance.ReplacementInput{
			Type:     "vendor",
			VendorID: strPtr("ven-1"),
			Cost:     &cost,
		},
	})
	require.NoError(t, err)
	assert.Empty(t, f.payments.payments)
}

func TestMarkInactiveVendorRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		Status:     "absent",
		Replacement: &attendance.ReplacementInput{
			Type:     "vendor",
			VendorID: strPtr("ven-2"),
		},
	})
	assert.ErrorIs(t, err, vendor.ErrVendorInactive)
}

func TestBulkMarkSkipsRowsWithoutStatus(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.BulkMark(context.Background(), attendance.BulkMarkAttendanceRequest{
		Date: "2026-03-02",
		Items: []attendance.BulkMarkItem{
			{EmployeeID: "emp-1", IsPresent: true},
			{EmployeeID: "emp-2"}, // neither flag set
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Saved)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 0, resp.Failed)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, attendance.OutcomeSaved, resp.Results[0].Outcome)
	assert.Equal(t, attendance.OutcomeSkipped, resp.Results[1].Outcome)
	assert.Nil(t, resp.Results[1].AttendanceID)
	assert.Len(t, f.attendances.records, 1)
}

func TestBulkMarkContinuesPastFailures(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.BulkMark(context.Background(), attendance.BulkMarkAttendanceRequest{
		Date: "2026-03-02",
		Items: []attendance.BulkMarkItem{
			{EmployeeID: "emp-1", IsPresent: true},
			{EmployeeID: "emp-404", IsPresent: true},
			{EmployeeID: "emp-2", IsAbsent: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Saved)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, attendance.OutcomeFailed, resp.Results[1].Outcome)
	require.NotNil(t, resp.Results[1].Error)
	assert.Equal(t, attendance.OutcomeSaved, resp.Results[2].Outcome)
}

func TestBulkMarkReportsPaymentFailureWithoutFailingItem(t *testing.T) {
	f := newFixture(t)
	f.payments.failWith = errors.New("payments table offline")
	cost := decimal.NewFromInt(250000)

	resp, err := f.svc.BulkMark(context.Background(), attendance.BulkMarkAttendanceRequest{
		Date: "2026-03-02",
		Items: []attendance.BulkMarkItem{
			{
				EmployeeID: "emp-1",
				IsAbsent:   true,
				Replacement: &attendance.ReplacementInput{
					Type:     "vendor",
					VendorID: strPtr("ven-1"),
					Cost:     &cost,
				},
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.Equal(t, attendance.OutcomeSaved, result.Outcome, "attendance write survives a payment failure")
	assert.False(t, result.PaymentCreated)
	require.NotNil(t, result.PaymentError)
	assert.Contains(t, *result.PaymentError, "payments table offline")
	assert.Len(t, f.attendances.records, 1)
}

func TestBulkMarkRejectsBothFlags(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.BulkMark(context.Background(), attendance.BulkMarkAttendanceRequest{
		Date: "2026-03-02",
		Items: []attendance.BulkMarkItem{
			{EmployeeID: "emp-1", IsPresent: true, IsAbsent: true},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be both present and absent")
}

func TestUpdateAttendanceRecomputesHours(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2026-03-02", Status: "present",
		CheckIn: strPtr("09:00"), CheckOut: strPtr("17:00"),
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:       created.ID,
		CheckOut: strPtr("21:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.HoursWorked)
	assert.Equal(t, 12.0, *updated.HoursWorked)
	assert.Equal(t, created.Date, updated.Date, "date is immutable on edit")
}

func TestUpdateAttendanceClearsReplacementWhenNoLongerAbsent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cost := decimal.NewFromInt(150000)

	created, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2026-03-02", Status: "absent",
		Replacement: &attendance.ReplacementInput{
			Type: "vendor", VendorID: strPtr("ven-1"), Cost: &cost,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created.Replacement)

	updated, err := f.svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:     created.ID,
		Status: strPtr("present"),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Replacement)
}

func TestUpdateAttendanceAddingVendorReliefCreatesPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cost := decimal.NewFromInt(500000)

	// Absence captured first, vendor coverage arranged later via edit.
	created, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2026-03-02", Status: "absent",
	})
	require.NoError(t, err)
	require.Empty(t, f.payments.payments)

	updated, err := f.svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID: created.ID,
		Replacement: &attendance.ReplacementInput{
			Type: "vendor", VendorID: strPtr("ven-1"), Cost: &cost,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Replacement)

	require.Len(t, f.payments.payments, 1)
	p := f.payments.payments[0]
	assert.Equal(t, "ven-1", p.VendorID)
	assert.Equal(t, "cus-1", p.CustomerID)
	assert.True(t, cost.Equal(p.Amount))
}

func TestUpdateAttendanceRunsInTransaction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Mark(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2026-03-02", Status: "present",
	})
	require.NoError(t, err)
	f.txCalls = 0

	_, err = f.svc.UpdateAttendance(ctx, attendance.UpdateAttendanceRequest{
		ID:    created.ID,
		Notes: strPtr("swapped posts at noon"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.txCalls, "edit runs its read-modify-write in one transaction")
}

func TestUpdateAttendanceNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateAttendance(context.Background(), attendance.UpdateAttendanceRequest{
		ID:     "att-404",
		Status: strPtr("present"),
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}
