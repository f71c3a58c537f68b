package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/shift"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `id, code, name, description, start_time, end_time,
	break_duration_minutes, grace_period_minutes, late_mark_after_minutes,
	half_day_hours, full_day_hours, is_night_shift, is_weekend_shift,
	status, created_at, updated_at`

func scanShift(row pgx.Row, s *shift.Shift) error {
	return row.Scan(
		&s.ID, &s.Code, &s.Name, &s.Description, &s.StartTime, &s.EndTime,
		&s.BreakDurationMinutes, &s.GracePeriodMinutes, &s.LateMarkAfterMinutes,
		&s.HalfDayHours, &s.FullDayHours, &s.IsNightShift, &s.IsWeekendShift,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *shiftRepository) Create(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, code, name, description, start_time, end_time,
			break_duration_minutes, grace_period_minutes, late_mark_after_minutes,
			half_day_hours, full_day_hours, is_night_shift, is_weekend_shift, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + shiftColumns

	var created shift.Shift
	err := scanShift(q.QueryRow(ctx, query,
		uuid.NewString(), sh.Code, sh.Name, sh.Description, sh.StartTime, sh.EndTime,
		sh.BreakDurationMinutes, sh.GracePeriodMinutes, sh.LateMarkAfterMinutes,
		sh.HalfDayHours, sh.FullDayHours, sh.IsNightShift, sh.IsWeekendShift, sh.Status,
	), &created)
	if err != nil {
		if strings.Contains(err.Error(), "uk_shift_code") {
			return shift.Shift{}, shift.ErrShiftCodeExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return created, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `,
			(SELECT COUNT(*) FROM employees e WHERE e.shift_id = shifts.id AND e.status = 'active')
		FROM shifts
		WHERE id = $1
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Code, &s.Name, &s.Description, &s.StartTime, &s.EndTime,
		&s.BreakDurationMinutes, &s.GracePeriodMinutes, &s.LateMarkAfterMinutes,
		&s.HalfDayHours, &s.FullDayHours, &s.IsNightShift, &s.IsWeekendShift,
		&s.Status, &s.CreatedAt, &s.UpdatedAt,
		&s.AssignedEmployees,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) List(ctx context.Context, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `,
			(SELECT COUNT(*) FROM employees e WHERE e.shift_id = shifts.id AND e.status = 'active')
		FROM shifts
	`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID, &s.Code, &s.Name, &s.Description, &s.StartTime, &s.EndTime,
			&s.BreakDurationMinutes, &s.GracePeriodMinutes, &s.LateMarkAfterMinutes,
			&s.HalfDayHours, &s.FullDayHours, &s.IsNightShift, &s.IsWeekendShift,
			&s.Status, &s.CreatedAt, &s.UpdatedAt,
			&s.AssignedEmployees,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *shiftRepository) Update(ctx context.Context, req shift.UpdateShiftRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			start_time = COALESCE($4, start_time),
			end_time = COALESCE($5, end_time),
			break_duration_minutes = COALESCE($6, break_duration_minutes),
			grace_period_minutes = COALESCE($7, grace_period_minutes),
			late_mark_after_minutes = COALESCE($8, late_mark_after_minutes),
			half_day_hours = COALESCE($9, half_day_hours),
			full_day_hours = COALESCE($10, full_day_hours),
			is_night_shift = COALESCE($11, is_night_shift),
			is_weekend_shift = COALESCE($12, is_weekend_shift),
			status = COALESCE($13, status),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Name, req.Description, parseClockPtr(req.StartTime), parseClockPtr(req.EndTime),
		req.BreakDurationMinutes, req.GracePeriodMinutes, req.LateMarkAfterMinutes,
		req.HalfDayHours, req.FullDayHours, req.IsNightShift, req.IsWeekendShift, req.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employee_shift") {
			return shift.ErrShiftInUse
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
