package report

// Growth selects reports by the sign of avg_yoy_q_revenue_growth
type Growth string

const (
	GrowthAny      Growth = ""
	GrowthPositive Growth = "positive"
	GrowthNegative Growth = "negatif"
)

// Company count bounds of GET /get-reports-companies-trade, inclusive
const (
	MinCompanies = 20
	MaxCompanies = 50
)

// Params are the raw query parameters of GET /get-reports-trade
type Params struct {
	Type *string
}

// KeyParts returns the parameters in cache key order: type
func (p Params) KeyParts() []*string {
	return []*string{p.Type}
}

// Filter is the resolved growth query
type Filter struct {
	Growth Growth
}

// ResolveFilter maps the type parameter to a Filter.
// Unknown values are not an error; they select every report unordered.
func ResolveFilter(p Params) Filter {
	if p.Type == nil {
		return Filter{}
	}
	switch Growth(*p.Type) {
	case GrowthPositive:
		return Filter{Growth: GrowthPositive}
	case GrowthNegative:
		return Filter{Growth: GrowthNegative}
	}
	return Filter{}
}

// OrderBySubSectorDesc reports whether results are ordered by sub_sector descending
func (f Filter) OrderBySubSectorDesc() bool {
	return f.Growth != GrowthAny
}

// Matches evaluates the filter against a single record
func (f Filter) Matches(r Report) bool {
	switch f.Growth {
	case GrowthPositive:
		return r.AvgYoYQRevenueGrowth.IsPositive()
	case GrowthNegative:
		return r.AvgYoYQRevenueGrowth.IsNegative()
	}
	return true
}

// CompaniesFilter bounds total_companies, both ends inclusive
type CompaniesFilter struct {
	Min int
	Max int
}

// DefaultCompaniesFilter is the fixed range served by the companies endpoint
func DefaultCompaniesFilter() CompaniesFilter {
	return CompaniesFilter{Min: MinCompanies, Max: MaxCompanies}
}

// Matches evaluates the range against a single record
func (f CompaniesFilter) Matches(r Report) bool {
	return r.TotalCompanies >= f.Min && r.TotalCompanies <= f.Max
}
