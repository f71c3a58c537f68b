package component

import (
	"time"

	"github.com/shopspring/decimal"
)

type ComponentType string

const (
	ComponentTypeAllowance ComponentType = "allowance"
	ComponentTypeDeduction ComponentType = "deduction"
)

var ComponentTypeValues = []string{
	string(ComponentTypeAllowance),
	string(ComponentTypeDeduction),
}

type CalculationMethod string

const (
	CalculationFixedAmount       CalculationMethod = "fixed_amount"
	CalculationPercentageOfBasic CalculationMethod = "percentage_of_basic"
	CalculationPercentageOfGross CalculationMethod = "percentage_of_gross"
)

var CalculationMethodValues = []string{
	string(CalculationFixedAmount),
	string(CalculationPercentageOfBasic),
	string(CalculationPercentageOfGross),
}

type ComponentStatus string

const (
	ComponentStatusActive   ComponentStatus = "active"
	ComponentStatusInactive ComponentStatus = "inactive"
)

var ComponentStatusValues = []string{
	string(ComponentStatusActive),
	string(ComponentStatusInactive),
}

// Component is one allowance/deduction definition. Value is a currency
// amount for fixed components and a whole-number percentage for the
// percentage methods (10 means 10%). Payroll runs only consume active
// components, in (DisplayOrder, Name) order — percentage-of-gross
// components depend on that ordering contract.
type Component struct {
	ID                     string
	Code                   string
	Name                   string
	Description            *string
	Type                   ComponentType
	CalculationMethod      CalculationMethod
	Value                  decimal.Decimal
	IsTaxable              bool
	IsMandatory            bool
	MinimumSalaryThreshold *decimal.Decimal
	MaximumCap             *decimal.Decimal
	Status                 ComponentStatus
	DisplayOrder           int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
