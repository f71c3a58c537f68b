package employee

import (
	"context"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
)

type service struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &service{employeeRepo: employeeRepo}
}

func (s *service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	record := employee.Employee{
		Code:          req.Code,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		DepartmentID:  req.DepartmentID,
		DesignationID: req.DesignationID,
		ShiftID:       req.ShiftID,
		BasicSalary:   req.BasicSalary,
		JoinDate:      joinDate,
		Status:        employee.EmploymentStatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, record)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *service) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	record, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(record), nil
}

func (s *service) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	records, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, record := range records {
		resp.Data = append(resp.Data, toResponse(record))
	}

	return resp, nil
}

func (s *service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              e.ID,
		Code:            e.Code,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		DepartmentID:    e.DepartmentID,
		DepartmentName:  e.DepartmentName,
		DesignationID:   e.DesignationID,
		DesignationName: e.DesignationName,
		ShiftID:         e.ShiftID,
		ShiftName:       e.ShiftName,
		BasicSalary:     e.BasicSalary,
		JoinDate:        employee.FormatJoinDate(e.JoinDate),
		Status:          string(e.Status),
	}
}
