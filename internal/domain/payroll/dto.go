package payroll

import (
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayrollDetailResponse struct {
	ID                string          `json:"id"`
	ComponentID       *string         `json:"component_id,omitempty"`
	ComponentName     string          `json:"component_name"`
	ComponentType     string          `json:"component_type"`
	CalculationMethod string          `json:"calculation_method"`
	ComponentValue    decimal.Decimal `json:"component_value"`
	Amount            decimal.Decimal `json:"amount"`
	IsTaxable         bool            `json:"is_taxable"`
}

type PayrollRecordResponse struct {
	ID            string  `json:"id"`
	PayrollNumber string  `json:"payroll_number"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	PaymentDate   string  `json:"payment_date"`

	BasicSalary     decimal.Decimal `json:"basic_salary"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	NetSalary       decimal.Decimal `json:"net_salary"`

	TotalWorkingDays int             `json:"total_working_days"`
	PresentDays      int             `json:"present_days"`
	AbsentDays       int             `json:"absent_days"`
	LateDays         int             `json:"late_days"`
	LeaveDays        decimal.Decimal `json:"leave_days"`
	PaidLeaves       decimal.Decimal `json:"paid_leaves"`
	UnpaidLeaves     decimal.Decimal `json:"unpaid_leaves"`

	LeaveDeductionAmount decimal.Decimal `json:"leave_deduction_amount"`

	Status     string  `json:"status"`
	Remarks    *string `json:"remarks,omitempty"`
	CreatedBy  string  `json:"created_by"`
	ApprovedBy *string `json:"approved_by,omitempty"`
	ApprovedAt *string `json:"approved_at,omitempty"`
	PaidAt     *string `json:"paid_at,omitempty"`

	Details []PayrollDetailResponse `json:"details,omitempty"`
}

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	errs = append(errs, validatePeriod(r.Month, r.Year)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateBulkPayrollRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateBulkPayrollRequest) Validate() error {
	if errs := validatePeriod(r.Month, r.Year); len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if year < 2000 || year > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "is out of range"})
	}
	return errs
}

type PayrollFilter struct {
	EmployeeID string
	Month      int
	Year       int
	Status     string
	Search     string
	Page       int
	Limit      int
}

type ListPayrollResponse struct {
	Data       []PayrollRecordResponse `json:"data"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
}

// BulkFailure reports one employee whose payroll could not be generated
// during a bulk run.
type BulkFailure struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

type BulkGenerateResponse struct {
	Month          int           `json:"month"`
	Year           int           `json:"year"`
	GeneratedCount int           `json:"generated_count"`
	SkippedCount   int           `json:"skipped_count"`
	FailedCount    int           `json:"failed_count"`
	Failures       []BulkFailure `json:"failures,omitempty"`
}

type PayrollSummaryResponse struct {
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	RecordCount     int64           `json:"record_count"`
	TotalBasic      decimal.Decimal `json:"total_basic"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalNet        decimal.Decimal `json:"total_net"`
	CountByStatus   map[string]int64 `json:"count_by_status"`
}
