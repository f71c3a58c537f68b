package shift

import (
	"context"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/shift"
)

type service struct {
	shiftRepo shift.ShiftRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository) shift.ShiftService {
	return &service{shiftRepo: shiftRepo}
}

func (s *service) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	startTime, _ := time.Parse("15:04", req.StartTime)
	endTime, _ := time.Parse("15:04", req.EndTime)

	record := shift.Shift{
		Code:                 req.Code,
		Name:                 req.Name,
		Description:          req.Description,
		StartTime:            startTime,
		EndTime:              endTime,
		BreakDurationMinutes: req.BreakDurationMinutes,
		GracePeriodMinutes:   req.GracePeriodMinutes,
		LateMarkAfterMinutes: req.LateMarkAfterMinutes,
		HalfDayHours:         req.HalfDayHours,
		FullDayHours:         req.FullDayHours,
		IsNightShift:         req.IsNightShift,
		IsWeekendShift:       req.IsWeekendShift,
		Status:               shift.ShiftStatusActive,
	}

	created, err := s.shiftRepo.Create(ctx, record)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toResponse(created), nil
}

func (s *service) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	record, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return toResponse(record), nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error) {
	records, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}

	return responses, nil
}

func (s *service) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.shiftRepo.Update(ctx, req); err != nil {
		return shift.ShiftResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	record, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.AssignedEmployees > 0 {
		return shift.ErrShiftInUse
	}
	return s.shiftRepo.Delete(ctx, id)
}

func toResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                   sh.ID,
		Code:                 sh.Code,
		Name:                 sh.Name,
		Description:          sh.Description,
		StartTime:            sh.StartTime.Format("15:04"),
		EndTime:              sh.EndTime.Format("15:04"),
		BreakDurationMinutes: sh.BreakDurationMinutes,
		GracePeriodMinutes:   sh.GracePeriodMinutes,
		LateMarkAfterMinutes: sh.LateMarkAfterMinutes,
		HalfDayHours:         sh.HalfDayHours,
		FullDayHours:         sh.FullDayHours,
		IsNightShift:         sh.IsNightShift,
		IsWeekendShift:       sh.IsWeekendShift,
		Status:               string(sh.Status),
		AssignedEmployees:    sh.AssignedEmployees,
	}
}
