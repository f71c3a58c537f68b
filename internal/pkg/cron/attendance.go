package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills absent records for the previous day.
// Active employees with no attendance record and no approved leave
// covering the day get an absent record; employees with approved leave
// get an on_leave record instead.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	slog.Info("Cron: Starting mark-absent job", "date", day.Format("2006-01-02"))

	employees, err := j.employeeRepo.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	markedIDs, err := j.attendanceRepo.ListEmployeeIDsForDate(ctx, day)
	if err != nil {
		return fmt.Errorf("failed to list marked employees: %w", err)
	}

	marked := make(map[string]struct{}, len(markedIDs))
	for _, id := range markedIDs {
		marked[id] = struct{}{}
	}

	absentCount := 0
	onLeaveCount := 0
	for _, emp := range employees {
		if _, ok := marked[emp.ID]; ok {
			continue
		}

		onLeave, err := j.leaveRepo.HasApprovedOnDate(ctx, emp.ID, day)
		if err != nil {
			slog.Error("Cron: Failed to check leave", "employee_id", emp.ID, "error", err)
			continue
		}

		status := attendance.StatusAbsent
		if onLeave {
			status = attendance.StatusOnLeave
		}

		_, err = j.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       day,
			CheckIn:    day,
			Status:     status,
		})
		if err != nil {
			// Another writer may have marked the day between the list and
			// the insert.
			if errors.Is(err, attendance.ErrAttendanceAlreadyMarked) {
				continue
			}
			slog.Error("Cron: Failed to mark employee", "employee_id", emp.ID, "error", err)
			continue
		}

		if onLeave {
			onLeaveCount++
		} else {
			absentCount++
		}
	}

	slog.Info("Cron: Mark-absent job completed",
		"date", day.Format("2006-01-02"),
		"absent", absentCount,
		"on_leave", onLeaveCount,
	)

	return nil
}
