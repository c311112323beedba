package institution

import "context"

// Repository defines read access to institution trade records
type Repository interface {
	// List returns every trade matching the filter
	List(ctx context.Context, filter Filter) ([]Trade, error)
}
