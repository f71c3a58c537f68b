package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/shift"
)

type service struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	shiftRepo      shift.ShiftRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
) attendance.AttendanceService {
	return &service{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
	}
}

func (s *service) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	checkIn, _ := time.Parse("15:04", req.CheckIn)
	var checkOut *time.Time
	if req.CheckOut != nil {
		t, _ := time.Parse("15:04", *req.CheckOut)
		checkOut = &t
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceAlreadyMarked
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	shiftCfg, err := s.shiftForEmployee(ctx, emp)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	if req.Status != nil {
		status = attendance.Status(*req.Status)
	}

	m := ComputeMetrics(checkIn, checkOut, status, shiftCfg)

	record := attendance.Attendance{
		EmployeeID:    emp.ID,
		Date:          date,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        m.Status,
		IsLate:        m.IsLate,
		LateByMinutes: m.LateByMinutes,
		IsHalfDay:     m.IsHalfDay,
		TotalHours:    m.TotalHours,
		OvertimeHours: m.OvertimeHours,
		Remarks:       req.Remarks,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

func (s *service) BulkMark(ctx context.Context, req attendance.BulkMarkAttendanceRequest) (attendance.BulkMarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BulkMarkResponse{}, err
	}

	var result attendance.BulkMarkResponse
	for _, employeeID := range req.Employees {
		markReq := attendance.MarkAttendanceRequest{
			EmployeeID: employeeID,
			Date:       req.Date,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
		}
		if _, err := s.Mark(ctx, markReq); err != nil {
			result.SkippedCount++
			result.Skipped = append(result.Skipped, employeeID)
			continue
		}
		result.MarkedCount++
	}

	return result, nil
}

func (s *service) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(record), nil
}

func (s *service) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Data:       make([]attendance.AttendanceResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, record := range records {
		resp.Data = append(resp.Data, toResponse(record))
	}

	return resp, nil
}

func (s *service) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckIn != nil {
		t, _ := time.Parse("15:04", *req.CheckIn)
		record.CheckIn = t
	}
	if req.CheckOut != nil {
		t, _ := time.Parse("15:04", *req.CheckOut)
		record.CheckOut = &t
	}
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	shiftCfg, err := s.shiftForEmployee(ctx, emp)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// Edits re-run the whole derivation from the (possibly updated)
	// punches rather than patching individual metric fields.
	base := baseStatus(record.Status)
	if req.Status != nil {
		base = attendance.Status(*req.Status)
	}
	m := ComputeMetrics(record.CheckIn, record.CheckOut, base, shiftCfg)

	record.Status = m.Status
	record.IsLate = m.IsLate
	record.LateByMinutes = m.LateByMinutes
	record.IsHalfDay = m.IsHalfDay
	record.TotalHours = m.TotalHours
	record.OvertimeHours = m.OvertimeHours

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.Get(ctx, record.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.attendanceRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *service) shiftForEmployee(ctx context.Context, emp employee.Employee) (*shift.Shift, error) {
	if emp.ShiftID == nil {
		return nil, nil
	}
	cfg, err := s.shiftRepo.GetByID(ctx, *emp.ShiftID)
	if err != nil {
		return nil, fmt.Errorf("load shift for employee %s: %w", emp.Code, err)
	}
	return &cfg, nil
}

// baseStatus maps a derived status back to the state the calculator
// starts from, so re-deriving an edited record does not compound.
func baseStatus(current attendance.Status) attendance.Status {
	switch current {
	case attendance.StatusLate, attendance.StatusHalfDay:
		return attendance.StatusPresent
	}
	return current
}

func toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		EmployeeCode:  a.EmployeeCode,
		Date:          a.Date.Format("2006-01-02"),
		CheckIn:       a.CheckIn.Format("15:04"),
		Status:        string(a.Status),
		IsLate:        a.IsLate,
		LateByMinutes: a.LateByMinutes,
		IsHalfDay:     a.IsHalfDay,
		TotalHours:    a.TotalHours,
		OvertimeHours: a.OvertimeHours,
		Remarks:       a.Remarks,
	}
	if a.CheckOut != nil {
		out := a.CheckOut.Format("15:04")
		resp.CheckOut = &out
	}
	return resp
}
