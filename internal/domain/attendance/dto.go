package attendance

import (
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AttendanceResponse struct {
	ID            string           `json:"id"`
	EmployeeID    string           `json:"employee_id"`
	EmployeeName  *string          `json:"employee_name,omitempty"`
	EmployeeCode  *string          `json:"employee_code,omitempty"`
	Date          string           `json:"date"`
	CheckIn       string           `json:"check_in"`
	CheckOut      *string          `json:"check_out,omitempty"`
	Status        string           `json:"status"`
	IsLate        bool             `json:"is_late"`
	LateByMinutes *int             `json:"late_by_minutes,omitempty"`
	IsHalfDay     bool             `json:"is_half_day"`
	TotalHours    *decimal.Decimal `json:"total_hours,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Remarks       *string          `json:"remarks,omitempty"`
}

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`      // "YYYY-MM-DD"
	CheckIn    string  `json:"check_in"`  // "HH:MM"
	CheckOut   *string `json:"check_out"` // "HH:MM", optional
	Status     *string `json:"status,omitempty"`
	Remarks    *string `json:"remarks,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if _, ok := validator.IsValidClockTime(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid HH:MM time"})
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid HH:MM time"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkAttendanceRequest marks the same date for many employees at once.
type BulkMarkAttendanceRequest struct {
	Date      string   `json:"date"`
	CheckIn   string   `json:"check_in"`
	CheckOut  *string  `json:"check_out,omitempty"`
	Employees []string `json:"employee_ids"`
}

func (r *BulkMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if _, ok := validator.IsValidClockTime(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid HH:MM time"})
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid HH:MM time"})
		}
	}
	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Status   *string `json:"status,omitempty"`
	Remarks  *string `json:"remarks,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CheckIn != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in", Message: "must be a valid HH:MM time"})
		}
	}
	if r.CheckOut != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out", Message: "must be a valid HH:MM time"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid attendance status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID string
	Status     string
	DateFrom   string
	DateTo     string
	Page       int
	Limit      int
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

type BulkMarkResponse struct {
	MarkedCount  int      `json:"marked_count"`
	SkippedCount int      `json:"skipped_count"`
	Skipped      []string `json:"skipped_employee_ids,omitempty"`
}
