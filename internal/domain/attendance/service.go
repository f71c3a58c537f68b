package attendance

import "context"

// AttendanceService defines business logic for attendance capture.
// Marking and editing re-derive the attendance metrics from the
// employee's shift configuration before persisting.
type AttendanceService interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	BulkMark(ctx context.Context, req BulkMarkAttendanceRequest) (BulkMarkResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}
