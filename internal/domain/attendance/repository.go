package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	// GetByEmployeeAndDate is the double-marking guard.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	// GetByEmployeeAndRange returns all records for a closed date interval,
	// ordered by date. The payroll generator consumes this.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	// ListEmployeeIDsForDate returns employee ids that have a record on the
	// given date. The absent-marking job uses it to find the gaps.
	ListEmployeeIDsForDate(ctx context.Context, date time.Time) ([]string, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	Update(ctx context.Context, attendance Attendance) error
	Delete(ctx context.Context, id string) error
}
