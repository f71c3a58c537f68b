package master

import (
	"context"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/master/designation"
)

// Service bundles the small department/designation master-data
// operations behind one surface.
type Service interface {
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error)
	GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error)
	ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error)
	UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) (designation.DesignationResponse, error)
	DeleteDesignation(ctx context.Context, id string) error
}

type service struct {
	departmentRepo  department.DepartmentRepository
	designationRepo designation.DesignationRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	designationRepo designation.DesignationRepository,
) Service {
	return &service{
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

func (s *service) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toDepartmentResponse(created), nil
}

func (s *service) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	record, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toDepartmentResponse(record), nil
}

func (s *service) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	records, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toDepartmentResponse(record))
	}

	return responses, nil
}

func (s *service) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := s.departmentRepo.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, err
	}
	return s.GetDepartment(ctx, req.ID)
}

func (s *service) DeleteDepartment(ctx context.Context, id string) error {
	record, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.EmployeeCount > 0 {
		return department.ErrDepartmentInUse
	}
	return s.departmentRepo.Delete(ctx, id)
}

func (s *service) CreateDesignation(ctx context.Context, req designation.CreateDesignationRequest) (designation.DesignationResponse, error) {
	if err := req.Validate(); err != nil {
		return designation.DesignationResponse{}, err
	}

	created, err := s.designationRepo.Create(ctx, designation.Designation{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return designation.DesignationResponse{}, err
	}

	return toDesignationResponse(created), nil
}

func (s *service) GetDesignation(ctx context.Context, id string) (designation.DesignationResponse, error) {
	record, err := s.designationRepo.GetByID(ctx, id)
	if err != nil {
		return designation.DesignationResponse{}, err
	}
	return toDesignationResponse(record), nil
}

func (s *service) ListDesignations(ctx context.Context) ([]designation.DesignationResponse, error) {
	records, err := s.designationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]designation.DesignationResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toDesignationResponse(record))
	}

	return responses, nil
}

func (s *service) UpdateDesignation(ctx context.Context, req designation.UpdateDesignationRequest) (designation.DesignationResponse, error) {
	if err := s.designationRepo.Update(ctx, req); err != nil {
		return designation.DesignationResponse{}, err
	}
	return s.GetDesignation(ctx, req.ID)
}

func (s *service) DeleteDesignation(ctx context.Context, id string) error {
	record, err := s.designationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.EmployeeCount > 0 {
		return designation.ErrDesignationInUse
	}
	return s.designationRepo.Delete(ctx, id)
}

func toDepartmentResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            d.ID,
		Code:          d.Code,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: d.EmployeeCount,
	}
}

func toDesignationResponse(d designation.Designation) designation.DesignationResponse {
	return designation.DesignationResponse{
		ID:            d.ID,
		Code:          d.Code,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: d.EmployeeCount,
	}
}
