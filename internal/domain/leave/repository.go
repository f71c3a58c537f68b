package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, leave Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	// GetApprovedInRange returns approved leave whose interval intersects
	// [start, end]. The payroll leave aggregator consumes this.
	GetApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Leave, error)
	// HasApprovedOnDate reports whether the employee has approved leave
	// covering the given date. The absent-marking job uses it.
	HasApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	// HasOverlapping reports whether a pending or approved leave of the
	// employee intersects [start, end]. Guards new applications.
	HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, int64, error)
	// UpdateStatus performs a state transition and stamps the actor.
	UpdateStatus(ctx context.Context, id string, status LeaveStatus, actedBy string, remarks *string) error
	Delete(ctx context.Context, id string) error
}
