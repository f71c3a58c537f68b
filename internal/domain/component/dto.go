package component

import (
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ComponentResponse struct {
	ID                     string           `json:"id"`
	Code                   string           `json:"code"`
	Name                   string           `json:"name"`
	Description            *string          `json:"description,omitempty"`
	Type                   string           `json:"type"`
	CalculationMethod      string           `json:"calculation_method"`
	Value                  decimal.Decimal  `json:"value"`
	IsTaxable              bool             `json:"is_taxable"`
	IsMandatory            bool             `json:"is_mandatory"`
	MinimumSalaryThreshold *decimal.Decimal `json:"minimum_salary_threshold,omitempty"`
	MaximumCap             *decimal.Decimal `json:"maximum_cap,omitempty"`
	Status                 string           `json:"status"`
	DisplayOrder           int              `json:"display_order"`
}

type CreateComponentRequest struct {
	Code                   string           `json:"code"`
	Name                   string           `json:"name"`
	Description            *string          `json:"description,omitempty"`
	Type                   string           `json:"type"`
	CalculationMethod      string           `json:"calculation_method"`
	Value                  decimal.Decimal  `json:"value"`
	IsTaxable              *bool            `json:"is_taxable,omitempty"`
	IsMandatory            *bool            `json:"is_mandatory,omitempty"`
	MinimumSalaryThreshold *decimal.Decimal `json:"minimum_salary_threshold,omitempty"`
	MaximumCap             *decimal.Decimal `json:"maximum_cap,omitempty"`
	DisplayOrder           int              `json:"display_order"`
}

func (r *CreateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if len(r.Code) > 20 {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must not exceed 20 characters"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if !validator.IsInSlice(r.Type, ComponentTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be allowance or deduction"})
	}
	if !validator.IsInSlice(r.CalculationMethod, CalculationMethodValues) {
		errs = append(errs, validator.ValidationError{Field: "calculation_method", Message: "must be one of: fixed_amount, percentage_of_basic, percentage_of_gross"})
	}
	if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}
	if r.CalculationMethod != string(CalculationFixedAmount) && r.Value.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "percentage must not exceed 100"})
	}
	if r.MinimumSalaryThreshold != nil && r.MinimumSalaryThreshold.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "minimum_salary_threshold", Message: "must be non-negative"})
	}
	if r.MaximumCap != nil && r.MaximumCap.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "maximum_cap", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateComponentRequest struct {
	ID                     string           `json:"-"`
	Name                   *string          `json:"name,omitempty"`
	Description            *string          `json:"description,omitempty"`
	Value                  *decimal.Decimal `json:"value,omitempty"`
	IsTaxable              *bool            `json:"is_taxable,omitempty"`
	IsMandatory            *bool            `json:"is_mandatory,omitempty"`
	MinimumSalaryThreshold *decimal.Decimal `json:"minimum_salary_threshold,omitempty"`
	MaximumCap             *decimal.Decimal `json:"maximum_cap,omitempty"`
	Status                 *string          `json:"status,omitempty"`
	DisplayOrder           *int             `json:"display_order,omitempty"`
}

func (r *UpdateComponentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Value != nil && r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, ComponentStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ComponentCostAnalysis projects a component's monthly cost over the
// current active headcount.
type ComponentCostAnalysis struct {
	ComponentCode          string          `json:"component_code"`
	ComponentName          string          `json:"component_name"`
	ComponentType          string          `json:"component_type"`
	CalculationMethod      string          `json:"calculation_method"`
	Value                  decimal.Decimal `json:"value"`
	IsTaxable              bool            `json:"is_taxable"`
	ApplicableEmployees    int             `json:"applicable_employees"`
	TotalMonthlyCost       decimal.Decimal `json:"total_monthly_cost"`
	TotalAnnualCost        decimal.Decimal `json:"total_annual_cost"`
	AverageCostPerEmployee decimal.Decimal `json:"average_cost_per_employee"`
}

type CostAnalysisResponse struct {
	TotalEmployees     int                     `json:"total_employees"`
	TotalBasicSalary   decimal.Decimal         `json:"total_basic_salary"`
	AverageBasicSalary decimal.Decimal         `json:"average_basic_salary"`
	TotalAllowanceCost decimal.Decimal         `json:"total_allowance_cost"`
	TotalDeductionCost decimal.Decimal         `json:"total_deduction_cost"`
	NetMonthlyCost     decimal.Decimal         `json:"net_monthly_cost"`
	NetAnnualCost      decimal.Decimal         `json:"net_annual_cost"`
	Components         []ComponentCostAnalysis `json:"components"`
}
