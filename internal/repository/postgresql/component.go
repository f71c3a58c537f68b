package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/paygrid-hr/payroll-backend-go/internal/domain/component"
	"github.com/paygrid-hr/payroll-backend-go/internal/pkg/database"
)

type componentRepository struct {
	db *database.DB
}

func NewComponentRepository(db *database.DB) component.ComponentRepository {
	return &componentRepository{db: db}
}

const componentColumns = `id, code, name, description, type, calculation_method, value,
	is_taxable, is_mandatory, minimum_salary_threshold, maximum_cap,
	status, display_order, created_at, updated_at`

func scanComponent(row pgx.Row, c *component.Component) error {
	return row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Description, &c.Type, &c.CalculationMethod, &c.Value,
		&c.IsTaxable, &c.IsMandatory, &c.MinimumSalaryThreshold, &c.MaximumCap,
		&c.Status, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *componentRepository) Create(ctx context.Context, comp component.Component) (component.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_components (
			id, code, name, description, type, calculation_method, value,
			is_taxable, is_mandatory, minimum_salary_threshold, maximum_cap,
			status, display_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + componentColumns

	var created component.Component
	err := scanComponent(q.QueryRow(ctx, query,
		uuid.NewString(), comp.Code, comp.Name, comp.Description, comp.Type, comp.CalculationMethod, comp.Value,
		comp.IsTaxable, comp.IsMandatory, comp.MinimumSalaryThreshold, comp.MaximumCap,
		comp.Status, comp.DisplayOrder,
	), &created)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_component_code") {
			return component.Component{}, component.ErrComponentCodeExists
		}
		return component.Component{}, fmt.Errorf("failed to create payroll component: %w", err)
	}

	return created, nil
}

func (r *componentRepository) GetByID(ctx context.Context, id string) (component.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM payroll_components WHERE id = $1`

	var c component.Component
	err := scanComponent(q.QueryRow(ctx, query, id), &c)
	if err != nil {
		if err == pgx.ErrNoRows {
			return component.Component{}, component.ErrComponentNotFound
		}
		return component.Component{}, fmt.Errorf("failed to get payroll component: %w", err)
	}

	return c, nil
}

func (r *componentRepository) List(ctx context.Context, activeOnly bool) ([]component.Component, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + componentColumns + ` FROM payroll_components`
	if activeOnly {
		query += ` WHERE status = 'active'`
	}
	// Valuation order is contractual: percentage-of-gross components see
	// only the allowances valued before them.
	query += ` ORDER BY display_order, name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll components: %w", err)
	}
	defer rows.Close()

	var components []component.Component
	for rows.Next() {
		var c component.Component
		if err := scanComponent(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan payroll component: %w", err)
		}
		components = append(components, c)
	}

	return components, rows.Err()
}

func (r *componentRepository) Update(ctx context.Context, req component.UpdateComponentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_components SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			value = COALESCE($4, value),
			is_taxable = COALESCE($5, is_taxable),
			is_mandatory = COALESCE($6, is_mandatory),
			minimum_salary_threshold = COALESCE($7, minimum_salary_threshold),
			maximum_cap = COALESCE($8, maximum_cap),
			status = COALESCE($9, status),
			display_order = COALESCE($10, display_order),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Name, req.Description, req.Value,
		req.IsTaxable, req.IsMandatory, req.MinimumSalaryThreshold, req.MaximumCap,
		req.Status, req.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return component.ErrComponentNotFound
	}

	return nil
}

func (r *componentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_components WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll component: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return component.ErrComponentNotFound
	}

	return nil
}
