package report

import "context"

// Repository defines read access to sub-sector reports
type Repository interface {
	// List returns reports matching the growth filter
	List(ctx context.Context, filter Filter) ([]Report, error)

	// ListCompanyCounts returns sub-sectors whose company count is in range
	ListCompanyCounts(ctx context.Context, filter CompaniesFilter) ([]CompanyCount, error)
}
