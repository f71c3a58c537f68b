package leave

import (
	"context"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
)

type service struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	actor        func(ctx context.Context) string
}

// NewLeaveService builds the leave workflow service. actor resolves the
// acting admin's name from the request context for approval stamps.
func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	actor func(ctx context.Context) string,
) leave.LeaveService {
	return &service{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		actor:        actor,
	}
}

func (s *service) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlaps, err := s.leaveRepo.HasOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrLeaveOverlaps
	}

	record := leave.Leave{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		IsHalfDay:  req.IsHalfDay,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	}

	created, err := s.leaveRepo.Create(ctx, record)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

func (s *service) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toResponse(record), nil
}

func (s *service) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	records, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	resp := leave.ListLeaveResponse{
		Data:       make([]leave.LeaveResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, record := range records {
		resp.Data = append(resp.Data, toResponse(record))
	}

	return resp, nil
}

func (s *service) Approve(ctx context.Context, req leave.ActOnLeaveRequest) (leave.LeaveResponse, error) {
	return s.transition(ctx, req, leave.LeaveStatusApproved)
}

func (s *service) Reject(ctx context.Context, req leave.ActOnLeaveRequest) (leave.LeaveResponse, error) {
	return s.transition(ctx, req, leave.LeaveStatusRejected)
}

func (s *service) Cancel(ctx context.Context, req leave.ActOnLeaveRequest) (leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// Cancellation is allowed for pending and approved leave; rejected
	// or already-cancelled requests stay as they are.
	if record.Status != leave.LeaveStatusPending && record.Status != leave.LeaveStatusApproved {
		return leave.LeaveResponse{}, leave.ErrLeaveNotCancellable
	}

	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, leave.LeaveStatusCancelled, s.actor(ctx), req.AdminRemarks); err != nil {
		return leave.LeaveResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.leaveRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.leaveRepo.Delete(ctx, id)
}

func (s *service) transition(ctx context.Context, req leave.ActOnLeaveRequest, to leave.LeaveStatus) (leave.LeaveResponse, error) {
	record, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if record.Status != leave.LeaveStatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, to, s.actor(ctx), req.AdminRemarks); err != nil {
		return leave.LeaveResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func toResponse(l leave.Leave) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		EmployeeCode: l.EmployeeCode,
		LeaveType:    string(l.LeaveType),
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		IsHalfDay:    l.IsHalfDay,
		Reason:       l.Reason,
		Status:       string(l.Status),
		AdminRemarks: l.AdminRemarks,
		ActedBy:      l.ActedBy,
		AppliedAt:    l.AppliedAt.Format(time.RFC3339),
	}
	if l.ActedAt != nil {
		actedAt := l.ActedAt.Format(time.RFC3339)
		resp.ActedAt = &actedAt
	}
	return resp
}
