package component

import (
	"context"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
	payrollcalc "github.com/paygrid-hr/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

type service struct {
	componentRepo component.ComponentRepository
	employeeRepo  employee.EmployeeRepository
}

func NewComponentService(
	componentRepo component.ComponentRepository,
	employeeRepo employee.EmployeeRepository,
) component.ComponentService {
	return &service{
		componentRepo: componentRepo,
		employeeRepo:  employeeRepo,
	}
}

func (s *service) Create(ctx context.Context, req component.CreateComponentRequest) (component.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return component.ComponentResponse{}, err
	}
	if req.MinimumSalaryThreshold != nil && req.MaximumCap != nil &&
		req.MinimumSalaryThreshold.GreaterThan(*req.MaximumCap) {
		return component.ComponentResponse{}, component.ErrInvalidThresholds
	}

	record := component.Component{
		Code:                   req.Code,
		Name:                   req.Name,
		Description:            req.Description,
		Type:                   component.ComponentType(req.Type),
		CalculationMethod:      component.CalculationMethod(req.CalculationMethod),
		Value:                  req.Value,
		MinimumSalaryThreshold: req.MinimumSalaryThreshold,
		MaximumCap:             req.MaximumCap,
		Status:                 component.ComponentStatusActive,
		DisplayOrder:           req.DisplayOrder,
	}
	if req.IsTaxable != nil {
		record.IsTaxable = *req.IsTaxable
	}
	if req.IsMandatory != nil {
		record.IsMandatory = *req.IsMandatory
	}

	created, err := s.componentRepo.Create(ctx, record)
	if err != nil {
		return component.ComponentResponse{}, err
	}

	return toResponse(created), nil
}

func (s *service) Get(ctx context.Context, id string) (component.ComponentResponse, error) {
	record, err := s.componentRepo.GetByID(ctx, id)
	if err != nil {
		return component.ComponentResponse{}, err
	}
	return toResponse(record), nil
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]component.ComponentResponse, error) {
	records, err := s.componentRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]component.ComponentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}

	return responses, nil
}

func (s *service) Update(ctx context.Context, req component.UpdateComponentRequest) (component.ComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return component.ComponentResponse{}, err
	}

	if err := s.componentRepo.Update(ctx, req); err != nil {
		return component.ComponentResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.componentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.componentRepo.Delete(ctx, id)
}

// CostAnalysis runs the payroll valuation pipeline over the current
// active headcount and rolls the amounts up per component. It uses the
// same ordering contract as payroll generation, so percentage-of-gross
// projections match what a real run would pay.
func (s *service) CostAnalysis(ctx context.Context) (component.CostAnalysisResponse, error) {
	components, err := s.componentRepo.List(ctx, true)
	if err != nil {
		return component.CostAnalysisResponse{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return component.CostAnalysisResponse{}, err
	}

	resp := component.CostAnalysisResponse{
		TotalEmployees: len(employees),
	}

	totals := make([]decimal.Decimal, len(components))
	applicable := make([]int, len(components))

	for _, emp := range employees {
		resp.TotalBasicSalary = resp.TotalBasicSalary.Add(emp.BasicSalary)

		allowancesSoFar := decimal.Zero
		for i, comp := range components {
			grossSoFar := emp.BasicSalary.Add(allowancesSoFar)
			amount := payrollcalc.ValuateComponent(comp, emp.BasicSalary, grossSoFar)

			if amount.IsPositive() {
				applicable[i]++
			}
			totals[i] = totals[i].Add(amount)

			if comp.Type == component.ComponentTypeAllowance {
				allowancesSoFar = allowancesSoFar.Add(amount)
				resp.TotalAllowanceCost = resp.TotalAllowanceCost.Add(amount)
			} else {
				resp.TotalDeductionCost = resp.TotalDeductionCost.Add(amount)
			}
		}
	}

	if len(employees) > 0 {
		resp.AverageBasicSalary = resp.TotalBasicSalary.Div(decimal.NewFromInt(int64(len(employees))))
	}
	resp.NetMonthlyCost = resp.TotalBasicSalary.Add(resp.TotalAllowanceCost).Sub(resp.TotalDeductionCost)
	resp.NetAnnualCost = resp.NetMonthlyCost.Mul(monthsPerYear)

	resp.Components = make([]component.ComponentCostAnalysis, 0, len(components))
	for i, comp := range components {
		analysis := component.ComponentCostAnalysis{
			ComponentCode:       comp.Code,
			ComponentName:       comp.Name,
			ComponentType:       string(comp.Type),
			CalculationMethod:   string(comp.CalculationMethod),
			Value:               comp.Value,
			IsTaxable:           comp.IsTaxable,
			ApplicableEmployees: applicable[i],
			TotalMonthlyCost:    totals[i],
			TotalAnnualCost:     totals[i].Mul(monthsPerYear),
		}
		if applicable[i] > 0 {
			analysis.AverageCostPerEmployee = totals[i].Div(decimal.NewFromInt(int64(applicable[i])))
		}
		resp.Components = append(resp.Components, analysis)
	}

	return resp, nil
}

func toResponse(c component.Component) component.ComponentResponse {
	return component.ComponentResponse{
		ID:                     c.ID,
		Code:                   c.Code,
		Name:                   c.Name,
		Description:            c.Description,
		Type:                   string(c.Type),
		CalculationMethod:      string(c.CalculationMethod),
		Value:                  c.Value,
		IsTaxable:              c.IsTaxable,
		IsMandatory:            c.IsMandatory,
		MinimumSalaryThreshold: c.MinimumSalaryThreshold,
		MaximumCap:             c.MaximumCap,
		Status:                 string(c.Status),
		DisplayOrder:           c.DisplayOrder,
	}
}
