package leave

import (
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/validator"
)

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	IsHalfDay    bool    `json:"is_half_day"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	AdminRemarks *string `json:"admin_remarks,omitempty"`
	ActedBy      *string `json:"acted_by,omitempty"`
	ActedAt      *string `json:"acted_at,omitempty"`
	AppliedAt    string  `json:"applied_at"`
}

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"` // "YYYY-MM-DD"
	EndDate    string `json:"end_date"`   // "YYYY-MM-DD"
	IsHalfDay  bool   `json:"is_half_day"`
	Reason     string `json:"reason"`
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !validator.IsInSlice(r.LeaveType, LeaveTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "invalid leave type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	// A half-day leave covers a single calendar day
	if startOK && endOK && r.IsHalfDay && !start.Equal(end) {
		errs = append(errs, validator.ValidationError{Field: "is_half_day", Message: "half-day leave must start and end on the same date"})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ActOnLeaveRequest struct {
	ID           string  `json:"-"`
	AdminRemarks *string `json:"admin_remarks,omitempty"`
}

type LeaveFilter struct {
	EmployeeID string
	LeaveType  string
	Status     string
	DateFrom   string
	DateTo     string
	Page       int
	Limit      int
}

type ListLeaveResponse struct {
	Data       []LeaveResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}
