package leave

import "context"

// LeaveService defines the leave request workflow. Approve, Reject and
// Cancel are state transitions; the payroll engine only ever reads
// approved records.
type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	Approve(ctx context.Context, req ActOnLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req ActOnLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, req ActOnLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}
