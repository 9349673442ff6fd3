package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/attendance"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/employee"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/schedule"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/vendor"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/database"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/sse"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/validator"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/repository/postgresql"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	vendor.VendorRepository
	paymentRepo vendor.PaymentRepository
	shiftRepo   schedule.ShiftAssignmentRepository
	hub         *sse.Hub

	runInTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	vendorRepo vendor.VendorRepository,
	paymentRepo vendor.PaymentRepository,
	shiftRepo schedule.ShiftAssignmentRepository,
	hub *sse.Hub,
) attendance.AttendanceService {
	svc := &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		VendorRepository:     vendorRepo,
		paymentRepo:          paymentRepo,
		shiftRepo:            shiftRepo,
		hub:                  hub,
	}
	svc.runInTx = svc.withTx
	return svc
}

func (s *AttendanceServiceImpl) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	rec, paymentCreated, paymentErr, err := s.saveDecision(ctx, req.EmployeeID, date, attendance.Status(req.Status), req.CheckIn, req.CheckOut, req.Notes, req.Replacement)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if paymentErr != nil {
		// The attendance write already landed; the payment can be re-created
		// manually, so this is a warning rather than a failure.
		slog.Warn("attendance saved but relief payment failed",
			"attendance_id", rec.ID, "employee_id", rec.EmployeeID, "error", paymentErr)
	} else if paymentCreated {
		slog.Info("relief payment created for absence",
			"attendance_id", rec.ID, "employee_id", rec.EmployeeID)
	}

	full, err := s.AttendanceRepository.GetByID(ctx, rec.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.publishChange(full)

	return toAttendanceResponse(full), nil
}

// BulkMark implements attendance.AttendanceService.
// Every item is attempted independently; a failing item is reported in its
// own result and never stops the rest of the batch.
func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, req attendance.BulkMarkAttendanceRequest) (attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return attendance.BulkMarkResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	resp := attendance.BulkMarkResponse{
		Date:    req.Date,
		Results: make([]attendance.BulkMarkResult, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		result := attendance.BulkMarkResult{EmployeeID: item.EmployeeID}

		status, ok := attendance.StatusFromFlags(item.IsPresent, item.IsAbsent)
		if !ok {
			result.Outcome = attendance.OutcomeSkipped
			resp.Skipped++
			resp.Results = append(resp.Results, result)
			continue
		}

		rec, paymentCreated, paymentErr, err := s.saveDecision(ctx, item.EmployeeID, date, status, item.CheckIn, item.CheckOut, item.Notes, item.Replacement)
		if err != nil {
			msg := err.Error()
			result.Outcome = attendance.OutcomeFailed
			result.Error = &msg
			resp.Failed++
			resp.Results = append(resp.Results, result)
			slog.Warn("bulk attendance item failed",
				"employee_id", item.EmployeeID, "date", req.Date, "error", err)
			continue
		}

		result.Outcome = attendance.OutcomeSaved
		result.AttendanceID = &rec.ID
		result.PaymentCreated = paymentCreated
		if paymentErr != nil {
			msg := paymentErr.Error()
			result.PaymentError = &msg
		}
		resp.Saved++
		resp.Results = append(resp.Results, result)
	}

	if resp.Saved > 0 {
		s.hub.Publish(sse.Event{
			Entity: "attendance_records",
			Action: "updated",
			Data:   map[string]interface{}{"date": req.Date, "saved": resp.Saved},
		})
	}

	return resp, nil
}

// saveDecision is the shared write path for single and bulk marking. It
// upserts the attendance record and, for a vendor-covered absence with a
// cost, creates the relief payment as a second phase. A payment failure is
// returned separately and never undoes the attendance write.
func (s *AttendanceServiceImpl) saveDecision(
	ctx context.Context,
	employeeID string,
	date time.Time,
	status attendance.Status,
	checkIn, checkOut, notes *string,
	replacement *attendance.ReplacementInput,
) (attendance.Record, bool, error, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Record{}, false, nil, err
	}

	shift, err := s.shiftRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.Record{}, false, nil, err
	}

	rec := attendance.Record{
		EmployeeID: emp.ID,
		Date:       date,
		Status:     status,
		CheckIn:    normalizeClock(checkIn),
		CheckOut:   normalizeClock(checkOut),
		Notes:      notes,
	}
	if shift != nil {
		rec.ShiftAssignmentID = &shift.ID
	}

	if rec.CheckIn != nil && rec.CheckOut != nil {
		hours, err := ComputeWorkedHours(*rec.CheckIn, *rec.CheckOut)
		if err != nil {
			return attendance.Record{}, false, nil, err
		}
		rec.HoursWorked = &hours
	}

	if status == attendance.StatusAbsent && replacement != nil {
		if err := s.applyReplacement(ctx, &rec, replacement); err != nil {
			return attendance.Record{}, false, nil, err
		}
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, rec)
	if err != nil {
		return attendance.Record{}, false, nil, err
	}

	paymentCreated, paymentErr := s.createReliefPayment(ctx, saved, shift, emp.FullName)
	return saved, paymentCreated, paymentErr, nil
}

// applyReplacement verifies the relief target exists and is active, then
// copies the replacement fields onto the record.
func (s *AttendanceServiceImpl) applyReplacement(ctx context.Context, rec *attendance.Record, r *attendance.ReplacementInput) error {
	if errs := r.Validate(rec.EmployeeID); len(errs) > 0 {
		return errs
	}

	rt := attendance.ReplacementType(r.Type)
	switch rt {
	case attendance.ReplacementVendor:
		v, err := s.VendorRepository.GetByID(ctx, *r.VendorID)
		if err != nil {
			return err
		}
		if v.Status != vendor.StatusActive {
			return vendor.ErrVendorInactive
		}
		rec.ReplacementVendorID = r.VendorID
	case attendance.ReplacementEmployee:
		relief, err := s.EmployeeRepository.GetByID(ctx, *r.EmployeeID)
		if err != nil {
			return err
		}
		if relief.Status != employee.StatusActive {
			return employee.ErrEmployeeInactive
		}
		rec.ReplacementEmployeeID = r.EmployeeID
	}

	rec.ReplacementType = &rt
	rec.ReplacementNotes = r.Notes
	rec.Overtime = r.Overtime
	rec.RelievingCost = r.Cost

	return nil
}

// createReliefPayment is the second phase of a vendor-covered absence: one
// payment to the covering vendor, billed against the customer of the shift
// that went uncovered. Without a shift the cost cannot be attributed to a
// customer and no payment is created.
func (s *AttendanceServiceImpl) createReliefPayment(ctx context.Context, rec attendance.Record, shift *schedule.ShiftAssignment, employeeName string) (bool, error) {
	if rec.Status != attendance.StatusAbsent ||
		rec.ReplacementType == nil || *rec.ReplacementType != attendance.ReplacementVendor ||
		rec.ReplacementVendorID == nil ||
		rec.RelievingCost == nil || rec.RelievingCost.Sign() <= 0 {
		return false, nil
	}

	if shift == nil {
		slog.Warn("vendor relief has a cost but no shift to bill it against",
			"attendance_id", rec.ID, "employee_id", rec.EmployeeID, "date", rec.Date.Format(dateLayout))
		return false, nil
	}

	notes := fmt.Sprintf("Relief coverage for absence of %s on %s", employeeName, rec.Date.Format(dateLayout))
	_, err := s.paymentRepo.Create(ctx, vendor.Payment{
		VendorID:    *rec.ReplacementVendorID,
		CustomerID:  shift.CustomerID,
		Amount:      *rec.RelievingCost,
		PaymentDate: rec.Date,
		Notes:       &notes,
	})
	if err != nil {
		return false, fmt.Errorf("failed to create relief payment: %w", err)
	}

	return true, nil
}

// UpdateAttendance implements attendance.AttendanceService. The
// read-modify-write runs in one transaction so concurrent edits of the same
// record cannot interleave.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var full attendance.Record
	err := s.runInTx(ctx, func(ctx context.Context) error {
		rec, err := s.AttendanceRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if req.Status != nil {
			rec.Status = attendance.Status(*req.Status)
		}
		if req.CheckIn != nil {
			rec.CheckIn = normalizeClock(req.CheckIn)
		}
		if req.CheckOut != nil {
			rec.CheckOut = normalizeClock(req.CheckOut)
		}
		if req.Notes != nil {
			rec.Notes = req.Notes
		}

		// A record edited away from absent loses its replacement; relief only
		// makes sense against an absence.
		if rec.Status != attendance.StatusAbsent {
			rec.ReplacementType = nil
			rec.ReplacementVendorID = nil
			rec.ReplacementEmployeeID = nil
			rec.ReplacementNotes = nil
			rec.Overtime = false
			rec.RelievingCost = nil
		}

		if req.Replacement != nil {
			if rec.Status != attendance.StatusAbsent {
				return validator.ValidationErrors{{
					Field:   "replacement",
					Message: "replacement is only allowed when status is absent",
				}}
			}
			rec.ReplacementVendorID = nil
			rec.ReplacementEmployeeID = nil
			if err := s.applyReplacement(ctx, &rec, req.Replacement); err != nil {
				return err
			}
		}

		rec.HoursWorked = nil
		if rec.CheckIn != nil && rec.CheckOut != nil {
			hours, err := ComputeWorkedHours(*rec.CheckIn, *rec.CheckOut)
			if err != nil {
				return err
			}
			rec.HoursWorked = &hours
		}

		if err := s.AttendanceRepository.Update(ctx, rec); err != nil {
			return err
		}

		full, err = s.AttendanceRepository.GetByID(ctx, rec.ID)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// An edit that attaches a vendor replacement goes through the same
	// payment phase as the original submission; an absence captured first
	// and covered later must still bill the relief.
	if req.Replacement != nil {
		paymentCreated, paymentErr := s.reliefPaymentForRecord(ctx, full)
		if paymentErr != nil {
			slog.Warn("attendance updated but relief payment failed",
				"attendance_id", full.ID, "employee_id", full.EmployeeID, "error", paymentErr)
		} else if paymentCreated {
			slog.Info("relief payment created for absence",
				"attendance_id", full.ID, "employee_id", full.EmployeeID)
		}
	}

	s.publishChange(full)

	return toAttendanceResponse(full), nil
}

// reliefPaymentForRecord resolves the shift and display name for a record
// that already exists, then runs the payment phase against it.
func (s *AttendanceServiceImpl) reliefPaymentForRecord(ctx context.Context, rec attendance.Record) (bool, error) {
	shift, err := s.shiftRepo.GetByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
	if err != nil {
		return false, err
	}

	name := rec.EmployeeID
	if rec.EmployeeName != nil {
		name = *rec.EmployeeName
	}

	return s.createReliefPayment(ctx, rec, shift, name)
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(rec), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Attendances = append(resp.Attendances, toAttendanceResponse(rec))
	}

	return resp, nil
}

func (s *AttendanceServiceImpl) publishChange(rec attendance.Record) {
	action := "updated"
	if rec.CreatedAt.Equal(rec.UpdatedAt) {
		action = "created"
	}
	s.hub.Publish(sse.Event{
		Entity: "attendance_records",
		Action: action,
		Data:   map[string]interface{}{"id": rec.ID, "employee_id": rec.EmployeeID, "date": rec.Date.Format(dateLayout)},
	})
}

// normalizeClock maps an empty clock string to nil so a blank form field
// clears the stored value.
func normalizeClock(t *string) *string {
	if t == nil || *t == "" {
		return nil
	}
	return t
}

func toAttendanceResponse(rec attendance.Record) attendance.AttendanceResponse {
	isPresent, isAbsent := attendance.Flags(rec.Status)

	resp := attendance.AttendanceResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		CustomerName: rec.CustomerName,
		Date:         rec.Date.Format(dateLayout),
		Status:       string(rec.Status),
		IsPresent:    isPresent,
		IsAbsent:     isAbsent,
		CheckIn:      rec.CheckIn,
		CheckOut:     rec.CheckOut,
		HoursWorked:  rec.HoursWorked,
		Notes:        rec.Notes,
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    rec.UpdatedAt.Format(time.RFC3339),
	}
	if rec.EmployeeName != nil {
		resp.EmployeeName = *rec.EmployeeName
	}
	if rec.ReplacementType != nil {
		resp.Replacement = &attendance.ReplacementResponse{
			Type:       string(*rec.ReplacementType),
			VendorID:   rec.ReplacementVendorID,
			EmployeeID: rec.ReplacementEmployeeID,
			Notes:      rec.ReplacementNotes,
			Overtime:   rec.Overtime,
			Cost:       rec.RelievingCost,
		}
	}

	return resp
}
