package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// List returns shifts with their query-time assigned-employee counts.
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
	Update(ctx context.Context, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error
}
