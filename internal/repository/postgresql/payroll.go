package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollSelect = `
	SELECT p.id, p.payroll_number, p.employee_id, p.month, p.year, p.payment_date,
		p.basic_salary, p.total_allowances, p.total_deductions, p.gross_salary, p.net_salary,
		p.total_working_days, p.present_days, p.absent_days, p.late_days,
		p.leave_days, p.paid_leaves, p.unpaid_leaves, p.leave_deduction_amount,
		p.status, p.remarks, p.created_by, p.approved_by, p.approved_at, p.paid_at,
		p.created_at, p.updated_at,
		e.name, e.code
	FROM payrolls p
	JOIN employees e ON e.id = p.employee_id
`

func scanPayroll(row pgx.Row, p *payroll.PayrollRecord) error {
	return row.Scan(
		&p.ID, &p.PayrollNumber, &p.EmployeeID, &p.Month, &p.Year, &p.PaymentDate,
		&p.BasicSalary, &p.TotalAllowances, &p.TotalDeductions, &p.GrossSalary, &p.NetSalary,
		&p.TotalWorkingDays, &p.PresentDays, &p.AbsentDays, &p.LateDays,
		&p.LeaveDays, &p.PaidLeaves, &p.UnpaidLeaves, &p.LeaveDeductionAmount,
		&p.Status, &p.Remarks, &p.CreatedBy, &p.ApprovedBy, &p.ApprovedAt, &p.PaidAt,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeCode,
	)
}

func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (
			id, payroll_number, employee_id, month, year, payment_date,
			basic_salary, total_allowances, total_deductions, gross_salary, net_salary,
			total_working_days, present_days, absent_days, late_days,
			leave_days, paid_leaves, unpaid_leaves, leave_deduction_amount,
			status, remarks, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19,
			$20, $21, $22
		)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		uuid.NewString(), record.PayrollNumber, record.EmployeeID, record.Month, record.Year, record.PaymentDate,
		record.BasicSalary, record.TotalAllowances, record.TotalDeductions, record.GrossSalary, record.NetSalary,
		record.TotalWorkingDays, record.PresentDays, record.AbsentDays, record.LateDays,
		record.LeaveDays, record.PaidLeaves, record.UnpaidLeaves, record.LeaveDeductionAmount,
		record.Status, record.Remarks, record.CreatedBy,
	).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_employee_period") {
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyExists
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	detailQuery := `
		INSERT INTO payroll_details (
			id, payroll_id, component_id, component_name, component_type,
			calculation_method, component_value, amount, is_taxable
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, d := range record.Details {
		_, err := q.Exec(ctx, detailQuery,
			uuid.NewString(), id, d.ComponentID, d.ComponentName, d.ComponentType,
			d.CalculationMethod, d.ComponentValue, d.Amount, d.IsTaxable,
		)
		if err != nil {
			return payroll.PayrollRecord{}, fmt.Errorf("failed to create payroll detail: %w", err)
		}
	}

	return r.GetByID(ctx, id)
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	var p payroll.PayrollRecord
	err := scanPayroll(q.QueryRow(ctx, payrollSelect+` WHERE p.id = $1`, id), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	details, err := r.GetDetails(ctx, id)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	p.Details = details

	return p, nil
}

func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	var p payroll.PayrollRecord
	err := scanPayroll(q.QueryRow(ctx,
		payrollSelect+` WHERE p.employee_id = $1 AND p.month = $2 AND p.year = $3`,
		employeeID, month, year), &p)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
		}
		return payroll.PayrollRecord{}, fmt.Errorf("failed to get payroll by period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListEmployeeIDsForPeriod(ctx context.Context, month, year int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT employee_id FROM payrolls WHERE month = $1 AND year = $2`, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll employee ids: %w", err)
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

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollRecord, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argPos))
		args = append(args, filter.EmployeeID)
		argPos++
	}
	if filter.Month != 0 {
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", argPos))
		args = append(args, filter.Month)
		argPos++
	}
	if filter.Year != 0 {
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", argPos))
		args = append(args, filter.Year)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.name ILIKE $%d OR e.code ILIKE $%d OR p.payroll_number ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM payrolls p JOIN employees e ON e.id = p.employee_id WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payrolls: %w", err)
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := payrollSelect + ` WHERE ` + where +
		fmt.Sprintf(` ORDER BY p.year DESC, p.month DESC, e.name LIMIT $%d OFFSET $%d`, argPos, argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		var p payroll.PayrollRecord
		if err := scanPayroll(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll: %w", err)
		}
		records = append(records, p)
	}

	return records, total, rows.Err()
}

func (r *payrollRepository) GetDetails(ctx context.Context, payrollID string) ([]payroll.PayrollDetail, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_id, component_id, component_name, component_type,
			calculation_method, component_value, amount, is_taxable
		FROM payroll_details
		WHERE payroll_id = $1
		ORDER BY component_type, component_name
	`

	rows, err := q.Query(ctx, query, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll details: %w", err)
	}
	defer rows.Close()

	var details []payroll.PayrollDetail
	for rows.Next() {
		var d payroll.PayrollDetail
		err := rows.Scan(
			&d.ID, &d.PayrollID, &d.ComponentID, &d.ComponentName, &d.ComponentType,
			&d.CalculationMethod, &d.ComponentValue, &d.Amount, &d.IsTaxable,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll detail: %w", err)
		}
		details = append(details, d)
	}

	return details, rows.Err()
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.PayrollStatus, actedBy *string) error {
	q := GetQuerier(ctx, r.db)

	var query string
	switch status {
	case payroll.PayrollStatusApproved:
		query = `
			UPDATE payrolls SET status = $2, approved_by = $3, approved_at = NOW(), updated_at = NOW()
			WHERE id = $1
		`
	case payroll.PayrollStatusPaid:
		query = `
			UPDATE payrolls SET status = $2, paid_at = NOW(), updated_at = NOW()
			WHERE id = $1
		`
	default:
		query = `
			UPDATE payrolls SET status = $2, updated_at = NOW()
			WHERE id = $1
		`
	}

	var (
		tag pgconn.CommandTag
		err error
	)
	if status == payroll.PayrollStatusApproved {
		tag, err = q.Exec(ctx, query, id, status, actedBy)
	} else {
		tag, err = q.Exec(ctx, query, id, status)
	}
	if err != nil {
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) GetSummary(ctx context.Context, month, year int) (payroll.PayrollSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	summary := payroll.PayrollSummaryResponse{
		Month:         month,
		Year:          year,
		CountByStatus: map[string]int64{},
	}

	query := `
		SELECT COUNT(*),
			COALESCE(SUM(basic_salary), 0),
			COALESCE(SUM(total_allowances), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(gross_salary), 0),
			COALESCE(SUM(net_salary), 0)
		FROM payrolls
		WHERE month = $1 AND year = $2
	`
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.RecordCount,
		&summary.TotalBasic, &summary.TotalAllowances, &summary.TotalDeductions,
		&summary.TotalGross, &summary.TotalNet,
	)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	rows, err := q.Query(ctx,
		`SELECT status, COUNT(*) FROM payrolls WHERE month = $1 AND year = $2 GROUP BY status`,
		month, year)
	if err != nil {
		return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll status counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return payroll.PayrollSummaryResponse{}, fmt.Errorf("failed to scan status count: %w", err)
		}
		summary.CountByStatus[status] = count
	}

	return summary, rows.Err()
}
