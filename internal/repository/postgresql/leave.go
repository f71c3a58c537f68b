package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveSelect = `
	SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.is_half_day,
		l.reason, l.status, l.admin_remarks, l.acted_by, l.acted_at, l.applied_at,
		l.created_at, l.updated_at,
		e.name, e.code
	FROM leaves l
	JOIN employees e ON e.id = l.employee_id
`

func scanLeave(row pgx.Row, l *leave.Leave) error {
	return row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.IsHalfDay,
		&l.Reason, &l.Status, &l.AdminRemarks, &l.ActedBy, &l.ActedAt, &l.AppliedAt,
		&l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName, &l.EmployeeCode,
	)
}

func (r *leaveRepository) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			id, employee_id, leave_type, start_date, end_date, is_half_day,
			reason, status, applied_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		uuid.NewString(), lv.EmployeeID, lv.LeaveType, lv.StartDate, lv.EndDate, lv.IsHalfDay,
		lv.Reason, lv.Status,
	).Scan(&id)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	var l leave.Leave
	err := scanLeave(q.QueryRow(ctx, leaveSelect+` WHERE l.id = $1`, id), &l)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return l, nil
}

func (r *leaveRepository) GetApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	// Interval intersection: the leave overlaps [start, end] when it
	// starts no later than end and ends no earlier than start.
	query := leaveSelect + `
		WHERE l.employee_id = $1
		  AND l.status = 'approved'
		  AND l.start_date <= $3
		  AND l.end_date >= $2
		ORDER BY l.start_date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		if err := scanLeave(rows, &l); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, rows.Err()
}

func (r *leaveRepository) HasApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leaves
			WHERE employee_id = $1
			  AND status = 'approved'
			  AND start_date <= $2
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return exists, nil
}

func (r *leaveRepository) HasOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leaves
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return exists, nil
}

func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.LeaveType != "" {
		conditions = append(conditions, fmt.Sprintf("l.leave_type = $%d", argPos))
		args = append(args, filter.LeaveType)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("l.end_date >= $%d", argPos))
		args = append(args, filter.DateFrom)
		argPos++
	}
	if filter.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("l.start_date <= $%d", argPos))
		args = append(args, filter.DateTo)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leaves l WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := leaveSelect + ` WHERE ` + where +
		fmt.Sprintf(` ORDER BY l.applied_at DESC LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var l leave.Leave
		if err := scanLeave(rows, &l); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, total, rows.Err()
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus, actedBy string, remarks *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves SET
			status = $2,
			acted_by = $3,
			acted_at = NOW(),
			admin_remarks = COALESCE($4, admin_remarks),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, actedBy, remarks)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}
