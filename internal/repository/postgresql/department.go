package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/master/department"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

const departmentSelect = `
	SELECT d.id, d.code, d.name, d.description, d.created_at, d.updated_at,
		(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id AND e.status = 'active')
	FROM departments d
`

func scanDepartment(row pgx.Row, d *department.Department) error {
	return row.Scan(&d.ID, &d.Code, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount)
}

func (r *departmentRepository) Create(ctx context.Context, dep department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, code, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, uuid.NewString(), dep.Code, dep.Name, dep.Description).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_department_code") {
			return department.Department{}, department.ErrDepartmentCodeExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d department.Department
	err := scanDepartment(q.QueryRow(ctx, departmentSelect+` WHERE d.id = $1`, id), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, departmentSelect+` ORDER BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := scanDepartment(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, rows.Err()
}

func (r *departmentRepository) Update(ctx context.Context, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.Description)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employee_department") {
			return department.ErrDepartmentInUse
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
