package metadata

import "context"

// Repository defines read access to company metadata
type Repository interface {
	// List returns every company matching the filter
	List(ctx context.Context, filter Filter) ([]Company, error)
}
