package payroll

import "errors"

var (
	ErrPayrollNotFound      = errors.New("payroll record not found")
	ErrPayrollAlreadyExists = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
	ErrNotApprovable        = errors.New("only pending or draft payrolls can be approved")
	ErrNotPayable           = errors.New("only approved payrolls can be marked paid")
	ErrNotCancellable       = errors.New("paid payrolls cannot be cancelled")
	ErrCannotDelete         = errors.New("approved or paid payrolls cannot be deleted")
	ErrNoActiveEmployees    = errors.New("no active employees found")
)
