package postgres

import (
	"context"
	"fmt"

	"github.com/arnizwnd/redis-tugas/internal/domain/report"
)

// ReportRepository implements report.Repository using PostgreSQL
type ReportRepository struct {
	db Querier
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db Querier) *ReportRepository {
	return &ReportRepository{db: db}
}

// List returns reports filtered by revenue growth sign
func (r *ReportRepository) List(ctx context.Context, filter report.Filter) ([]report.Report, error) {
	query := buildReportQuery(filter)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	reports := []report.Report{}
	for rows.Next() {
		var rep report.Report
		err := rows.Scan(
			&rep.ID, &rep.SubSector, &rep.SubSectorID, &rep.TotalCompanies,
			&rep.AvgYoYQRevenueGrowth, &rep.AvgYoYQEarningsGrowth,
			&rep.TotalMarketCap, &rep.WeightedMaxDrawdown1Yr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return reports, nil
}

// ListCompanyCounts returns sub-sector company counts within the range
func (r *ReportRepository) ListCompanyCounts(ctx context.Context, filter report.CompaniesFilter) ([]report.CompanyCount, error) {
	query := fmt.Sprintf(`
		SELECT sub_sector, total_companies
		FROM %s
		WHERE total_companies BETWEEN $1 AND $2
	`, reportsTable)

	rows, err := r.db.Query(ctx, query, filter.Min, filter.Max)
	if err != nil {
		return nil, fmt.Errorf("failed to query report company counts: %w", err)
	}
	defer rows.Close()

	counts := []report.CompanyCount{}
	for rows.Next() {
		var c report.CompanyCount
		if err := rows.Scan(&c.SubSector, &c.TotalCompanies); err != nil {
			return nil, fmt.Errorf("failed to scan report company count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report company counts: %w", err)
	}

	return counts, nil
}

// buildReportQuery has no parameters: the growth filter is a fixed predicate
func buildReportQuery(filter report.Filter) string {
	whereClause := ""
	switch filter.Growth {
	case report.GrowthPositive:
		whereClause = "WHERE avg_yoy_q_revenue_growth > 0"
	case report.GrowthNegative:
		whereClause = "WHERE avg_yoy_q_revenue_growth < 0"
	}

	orderByClause := ""
	if filter.OrderBySubSectorDesc() {
		orderByClause = "ORDER BY sub_sector DESC"
	}

	return fmt.Sprintf(`
		SELECT id, sub_sector, sub_sector_id, total_companies,
		       avg_yoy_q_revenue_growth, avg_yoy_q_earnings_growth,
		       total_market_cap, weighted_max_drawdown_1yr
		FROM %s
		%s
		%s
	`, reportsTable, whereClause, orderByClause)
}
