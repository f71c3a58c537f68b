package response

import (
	"errors"
	"net/http"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/master/designation"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/shift"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrNoBasicSalary):
		BadRequest(w, "Employee has no basic salary configured", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftCodeExists):
		Conflict(w, "Shift code already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to employees and cannot be deleted")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentCodeExists):
		Conflict(w, "Department code already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department has employees and cannot be deleted")
	case errors.Is(err, designation.ErrDesignationNotFound):
		NotFound(w, "Designation not found")
	case errors.Is(err, designation.ErrDesignationCodeExists):
		Conflict(w, "Designation code already exists")
	case errors.Is(err, designation.ErrDesignationInUse):
		Conflict(w, "Designation has employees and cannot be deleted")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyMarked):
		Conflict(w, "Attendance already marked for this employee and date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveNotCancellable):
		Conflict(w, "Leave request cannot be cancelled")
	case errors.Is(err, leave.ErrLeaveOverlaps):
		Conflict(w, "Leave request overlaps an existing request")

	// Component domain errors
	case errors.Is(err, component.ErrComponentNotFound):
		NotFound(w, "Payroll component not found")
	case errors.Is(err, component.ErrComponentCodeExists):
		Conflict(w, "Component code already exists")
	case errors.Is(err, component.ErrInvalidThresholds):
		BadRequest(w, "Minimum salary threshold must not exceed maximum cap", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already generated for this employee and period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrNotApprovable):
		Conflict(w, "Only pending or draft payrolls can be approved")
	case errors.Is(err, payroll.ErrNotPayable):
		Conflict(w, "Only approved payrolls can be marked paid")
	case errors.Is(err, payroll.ErrNotCancellable):
		Conflict(w, "Paid payrolls cannot be cancelled")
	case errors.Is(err, payroll.ErrCannotDelete):
		Conflict(w, "Approved or paid payrolls cannot be deleted")
	case errors.Is(err, payroll.ErrNoActiveEmployees):
		BadRequest(w, "No active employees found", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
