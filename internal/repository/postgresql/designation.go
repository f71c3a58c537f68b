package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/master/designation"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
)

type designationRepository struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepository{db: db}
}

const designationSelect = `
	SELECT g.id, g.code, g.name, g.description, g.created_at, g.updated_at,
		(SELECT COUNT(*) FROM employees e WHERE e.designation_id = g.id AND e.status = 'active')
	FROM designations g
`

func scanDesignation(row pgx.Row, d *designation.Designation) error {
	return row.Scan(&d.ID, &d.Code, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount)
}

func (r *designationRepository) Create(ctx context.Context, des designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO designations (id, code, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, uuid.NewString(), des.Code, des.Name, des.Description).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "uk_designation_code") {
			return designation.Designation{}, designation.ErrDesignationCodeExists
		}
		return designation.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *designationRepository) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	var d designation.Designation
	err := scanDesignation(q.QueryRow(ctx, designationSelect+` WHERE g.id = $1`, id), &d)
	if err != nil {
		if err == pgx.ErrNoRows {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, fmt.Errorf("failed to get designation: %w", err)
	}

	return d, nil
}

func (r *designationRepository) List(ctx context.Context) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, designationSelect+` ORDER BY g.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list designations: %w", err)
	}
	defer rows.Close()

	var designations []designation.Designation
	for rows.Next() {
		var d designation.Designation
		if err := scanDesignation(rows, &d); err != nil {
			return nil, fmt.Errorf("failed to scan designation: %w", err)
		}
		designations = append(designations, d)
	}

	return designations, rows.Err()
}

func (r *designationRepository) Update(ctx context.Context, req designation.UpdateDesignationRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE designations SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.Description)
	if err != nil {
		return fmt.Errorf("failed to update designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}

	return nil
}

func (r *designationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employee_designation") {
			return designation.ErrDesignationInUse
		}
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}

	return nil
}
