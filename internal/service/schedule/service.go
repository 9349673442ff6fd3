package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/customer"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/employee"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/schedule"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/pkg/sse"
)

const dateLayout = "2006-01-02"

type ScheduleServiceImpl struct {
	schedule.ShiftAssignmentRepository
	employee.EmployeeRepository
	customerRepo customer.CustomerRepository
	hub          *sse.Hub
	now          func() time.Time
}

func NewScheduleService(
	shiftRepo schedule.ShiftAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	customerRepo customer.CustomerRepository,
	hub *sse.Hub,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		ShiftAssignmentRepository: shiftRepo,
		EmployeeRepository:        employeeRepo,
		customerRepo:              customerRepo,
		hub:                       hub,
		now:                       time.Now,
	}
}

// CreateShiftAssignment implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateShiftAssignment(ctx context.Context, req schedule.CreateShiftAssignmentRequest) (schedule.ShiftAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return schedule.ShiftAssignmentResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return schedule.ShiftAssignmentResponse{}, employee.ErrEmployeeInactive
	}

	if _, err := s.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}

	existing, err := s.ShiftAssignmentRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}
	if existing != nil {
		return schedule.ShiftAssignmentResponse{}, schedule.ErrShiftOverlap
	}

	shift, err := s.ShiftAssignmentRepository.Create(ctx, schedule.ShiftAssignment{
		EmployeeID: req.EmployeeID,
		CustomerID: req.CustomerID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Location:   req.Location,
		Status:     schedule.StatusScheduled,
	})
	if err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}

	s.hub.Publish(sse.Event{
		Entity: "shift_assignments",
		Action: "created",
		Data:   map[string]interface{}{"id": shift.ID, "employee_id": shift.EmployeeID, "date": req.Date},
	})

	return toShiftResponse(shift), nil
}

// ListShiftAssignments implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListShiftAssignments(ctx context.Context, filter schedule.ShiftAssignmentFilter) ([]schedule.ShiftAssignmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	shifts, err := s.ShiftAssignmentRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]schedule.ShiftAssignmentResponse, 0, len(shifts))
	for _, shift := range shifts {
		out = append(out, toShiftResponse(shift))
	}
	return out, nil
}

// UpdateShiftStatus implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) UpdateShiftStatus(ctx context.Context, req schedule.UpdateShiftStatusRequest) (schedule.ShiftAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}

	shift, err := s.ShiftAssignmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}

	target := schedule.Status(req.Status)
	if !schedule.ValidTransition(shift.Status, target) {
		return schedule.ShiftAssignmentResponse{}, schedule.ErrInvalidStatusTransition
	}

	if err := s.ShiftAssignmentRepository.UpdateStatus(ctx, shift.ID, target); err != nil {
		return schedule.ShiftAssignmentResponse{}, err
	}
	shift.Status = target

	s.hub.Publish(sse.Event{
		Entity: "shift_assignments",
		Action: "updated",
		Data:   map[string]interface{}{"id": shift.ID, "status": string(target)},
	})

	return toShiftResponse(shift), nil
}

// AdvanceLifecycle implements schedule.ScheduleService. Run from the cron
// scheduler: scheduled shifts past their start time move to in_progress,
// in-progress shifts past their end time move to completed.
func (s *ScheduleServiceImpl) AdvanceLifecycle(ctx context.Context) error {
	due, err := s.ShiftAssignmentRepository.ListDue(ctx, s.now())
	if err != nil {
		return fmt.Errorf("failed to list due shifts: %w", err)
	}

	advanced := 0
	for _, shift := range due {
		var target schedule.Status
		switch shift.Status {
		case schedule.StatusScheduled:
			target = schedule.StatusInProgress
		case schedule.StatusInProgress:
			target = schedule.StatusCompleted
		default:
			continue
		}

		if err := s.ShiftAssignmentRepository.UpdateStatus(ctx, shift.ID, target); err != nil {
			slog.Warn("failed to advance shift lifecycle",
				"shift_id", shift.ID, "from", string(shift.Status), "to", string(target), "error", err)
			continue
		}
		advanced++

		s.hub.Publish(sse.Event{
			Entity: "shift_assignments",
			Action: "updated",
			Data:   map[string]interface{}{"id": shift.ID, "status": string(target)},
		})
	}

	if advanced > 0 {
		slog.Info("advanced shift lifecycles", "count", advanced)
	}

	return nil
}

func toShiftResponse(shift schedule.ShiftAssignment) schedule.ShiftAssignmentResponse {
	resp := schedule.ShiftAssignmentResponse{
		ID:         shift.ID,
		EmployeeID: shift.EmployeeID,
		CustomerID: shift.CustomerID,
		Date:       shift.Date.Format(dateLayout),
		StartTime:  shift.StartTime,
		EndTime:    shift.EndTime,
		Location:   shift.Location,
		Status:     string(shift.Status),
		CreatedAt:  shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  shift.UpdatedAt.Format(time.RFC3339),
	}
	if shift.EmployeeName != nil {
		resp.EmployeeName = *shift.EmployeeName
	}
	if shift.CustomerName != nil {
		resp.CustomerName = *shift.CustomerName
	}
	return resp
}
