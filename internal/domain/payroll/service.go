package payroll

import "context"

// PayrollService orchestrates payroll generation and the record's
// lifecycle: draft/pending -> approved -> paid, with cancellation
// possible before payment.
type PayrollService interface {
	Generate(ctx context.Context, req GeneratePayrollRequest) (PayrollRecordResponse, error)
	GenerateBulk(ctx context.Context, req GenerateBulkPayrollRequest) (BulkGenerateResponse, error)
	Get(ctx context.Context, id string) (PayrollRecordResponse, error)
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)
	Approve(ctx context.Context, id string) (PayrollRecordResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollRecordResponse, error)
	Cancel(ctx context.Context, id string) (PayrollRecordResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, month, year int) (PayrollSummaryResponse, error)
}
