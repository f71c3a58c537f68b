package payroll

import "context"

type PayrollRepository interface {
	// CreateRecord inserts the record plus its detail snapshots. Callers
	// run it inside a transaction; the (employee_id, month, year) unique
	// constraint is the final duplicate guard and surfaces as
	// ErrPayrollAlreadyExists.
	CreateRecord(ctx context.Context, record PayrollRecord) (PayrollRecord, error)
	GetByID(ctx context.Context, id string) (PayrollRecord, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (PayrollRecord, error)
	// ListEmployeeIDsForPeriod returns employee ids that already have a
	// record for the period, for bulk-generation skipping.
	ListEmployeeIDsForPeriod(ctx context.Context, month, year int) ([]string, error)
	List(ctx context.Context, filter PayrollFilter) ([]PayrollRecord, int64, error)
	GetDetails(ctx context.Context, payrollID string) ([]PayrollDetail, error)
	UpdateStatus(ctx context.Context, id string, status PayrollStatus, actedBy *string) error
	// Delete removes the record; detail rows cascade.
	Delete(ctx context.Context, id string) error
	GetSummary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
