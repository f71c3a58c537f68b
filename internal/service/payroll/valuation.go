package payroll

import (
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ValuateComponent computes one component's amount for an employee.
// grossSoFar is basic plus the allowances valued before this component,
// so percentage-of-gross results depend on the component ordering.
//
// The salary threshold gates every calculation method: when the basic
// salary is below it, the component simply does not apply. The cap
// clamps whatever amount the method produced.
func ValuateComponent(def component.Component, basicSalary, grossSoFar decimal.Decimal) decimal.Decimal {
	if def.MinimumSalaryThreshold != nil && basicSalary.LessThan(*def.MinimumSalaryThreshold) {
		return decimal.Zero
	}

	var amount decimal.Decimal
	switch def.CalculationMethod {
	case component.CalculationFixedAmount:
		amount = def.Value
	case component.CalculationPercentageOfBasic:
		amount = basicSalary.Mul(def.Value).Div(hundred)
	case component.CalculationPercentageOfGross:
		amount = grossSoFar.Mul(def.Value).Div(hundred)
	default:
		return decimal.Zero
	}

	if def.MaximumCap != nil && amount.GreaterThan(*def.MaximumCap) {
		amount = *def.MaximumCap
	}

	return amount
}
