package payroll

import (
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/shopspring/decimal"
)

type PayrollStatus string

const (
	PayrollStatusDraft     PayrollStatus = "draft"
	PayrollStatusPending   PayrollStatus = "pending"
	PayrollStatusApproved  PayrollStatus = "approved"
	PayrollStatusPaid      PayrollStatus = "paid"
	PayrollStatusCancelled PayrollStatus = "cancelled"
)

// PayrollRecord is the generated payroll for one (employee, month, year),
// unique on that triple. Leave counters are decimal so a half-day leave
// can carry 0.5.
type PayrollRecord struct {
	ID            string
	PayrollNumber string
	EmployeeID    string
	Month         int
	Year          int
	PaymentDate   time.Time

	BasicSalary     decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	GrossSalary     decimal.Decimal
	NetSalary       decimal.Decimal

	TotalWorkingDays int
	PresentDays      int
	AbsentDays       int
	LateDays         int
	LeaveDays        decimal.Decimal
	PaidLeaves       decimal.Decimal
	UnpaidLeaves     decimal.Decimal

	LeaveDeductionAmount decimal.Decimal

	Status     PayrollStatus
	Remarks    *string
	CreatedBy  string
	ApprovedBy *string
	ApprovedAt *time.Time
	PaidAt     *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Details []PayrollDetail

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// PayrollDetail is a point-in-time snapshot of one component valuation.
// It stays unchanged when the component definition is later edited.
type PayrollDetail struct {
	ID                string
	PayrollID         string
	ComponentID       *string
	ComponentName     string
	ComponentType     component.ComponentType
	CalculationMethod component.CalculationMethod
	ComponentValue    decimal.Decimal
	Amount            decimal.Decimal
	IsTaxable         bool
}
