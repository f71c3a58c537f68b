package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status,
		a.is_late, a.late_by_minutes, a.is_half_day, a.total_hours, a.overtime_hours,
		a.remarks, a.created_at, a.updated_at,
		e.name, e.code
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
`

func scanAttendance(row pgx.Row, a *attendance.Attendance) error {
	return row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut, &a.Status,
		&a.IsLate, &a.LateByMinutes, &a.IsHalfDay, &a.TotalHours, &a.OvertimeHours,
		&a.Remarks, &a.CreatedAt, &a.UpdatedAt,
		&a.EmployeeName, &a.EmployeeCode,
	)
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, status,
			is_late, late_by_minutes, is_half_day, total_hours, overtime_hours, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		uuid.NewString(), att.EmployeeID, att.Date, att.CheckIn, att.CheckOut, att.Status,
		att.IsLate, att.LateByMinutes, att.IsHalfDay, att.TotalHours, att.OvertimeHours, att.Remarks,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_attendance_employee_date") {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var a attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id), &a)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return a, nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var a attendance.Attendance
	err := scanAttendance(q.QueryRow(ctx,
		attendanceSelect+` WHERE a.employee_id = $1 AND a.date = $2`, employeeID, date), &a)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by date: %w", err)
	}

	return &a, nil
}

func (r *attendanceRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		attendanceSelect+` WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3 ORDER BY a.date`,
		employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := scanAttendance(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *attendanceRepository) ListEmployeeIDsForDate(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM attendances WHERE date = $1`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argPos))
		args = append(args, filter.DateFrom)
		argPos++
	}
	if filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argPos))
		args = append(args, filter.DateTo)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendances a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := attendanceSelect + ` WHERE ` + where +
		fmt.Sprintf(` ORDER BY a.date DESC, e.name LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := scanAttendance(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, total, rows.Err()
}

func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			check_in = $2,
			check_out = $3,
			status = $4,
			is_late = $5,
			late_by_minutes = $6,
			is_half_day = $7,
			total_hours = $8,
			overtime_hours = $9,
			remarks = $10,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.CheckIn, att.CheckOut, att.Status,
		att.IsLate, att.LateByMinutes, att.IsHalfDay, att.TotalHours, att.OvertimeHours,
		att.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
