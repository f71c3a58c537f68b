package employee

import (
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Email           *string         `json:"email,omitempty"`
	Phone           *string         `json:"phone,omitempty"`
	DepartmentID    *string         `json:"department_id,omitempty"`
	DepartmentName  *string         `json:"department_name,omitempty"`
	DesignationID   *string         `json:"designation_id,omitempty"`
	DesignationName *string         `json:"designation_name,omitempty"`
	ShiftID         *string         `json:"shift_id,omitempty"`
	ShiftName       *string         `json:"shift_name,omitempty"`
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	JoinDate        string          `json:"join_date"`
	Status          string          `json:"status"`
}

type CreateEmployeeRequest struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Email         *string         `json:"email,omitempty"`
	Phone         *string         `json:"phone,omitempty"`
	DepartmentID  *string         `json:"department_id,omitempty"`
	DesignationID *string         `json:"designation_id,omitempty"`
	ShiftID       *string         `json:"shift_id,omitempty"`
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	JoinDate      string          `json:"join_date"` // "YYYY-MM-DD"
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	} else if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must match format like EMP-0042"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be a valid YYYY-MM-DD date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string           `json:"-"`
	Name          *string          `json:"name,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	DepartmentID  *string          `json:"department_id,omitempty"`
	DesignationID *string          `json:"designation_id,omitempty"`
	ShiftID       *string          `json:"shift_id,omitempty"`
	BasicSalary   *decimal.Decimal `json:"basic_salary,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, EmploymentStatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of: active, inactive, resigned"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search       string
	DepartmentID string
	ShiftID      string
	Status       string
	Page         int
	Limit        int
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// FormatJoinDate renders the join date the way list screens expect it.
func FormatJoinDate(t time.Time) string {
	return t.Format("2006-01-02")
}
