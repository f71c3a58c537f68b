package component

import "context"

type ComponentRepository interface {
	Create(ctx context.Context, component Component) (Component, error)
	GetByID(ctx context.Context, id string) (Component, error)
	// List returns components ordered by (display_order, name) — the
	// ordering is contractual for percentage-of-gross valuation.
	List(ctx context.Context, activeOnly bool) ([]Component, error)
	Update(ctx context.Context, req UpdateComponentRequest) error
	Delete(ctx context.Context, id string) error
}
