package component

import "context"

// ComponentService defines business logic for allowance/deduction
// component administration.
type ComponentService interface {
	Create(ctx context.Context, req CreateComponentRequest) (ComponentResponse, error)
	Get(ctx context.Context, id string) (ComponentResponse, error)
	List(ctx context.Context, activeOnly bool) ([]ComponentResponse, error)
	Update(ctx context.Context, req UpdateComponentRequest) (ComponentResponse, error)
	Delete(ctx context.Context, id string) error
	// CostAnalysis projects each active component over the active
	// headcount using the same valuation rules payroll applies.
	CostAnalysis(ctx context.Context) (CostAnalysisResponse, error)
}
