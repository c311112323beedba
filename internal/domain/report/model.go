package report

import "github.com/shopspring/decimal"

// Report is the periodic financial summary of one sub-sector
// Maps to api_reports table
type Report struct {
	ID                     int64               `json:"id" db:"id"`
	SubSector              string              `json:"sub_sector" db:"sub_sector"`
	SubSectorID            int64               `json:"sub_sector_id" db:"sub_sector_id"`
	TotalCompanies         int                 `json:"total_companies" db:"total_companies"`
	AvgYoYQRevenueGrowth   decimal.Decimal     `json:"avg_yoy_q_revenue_growth" db:"avg_yoy_q_revenue_growth"`
	AvgYoYQEarningsGrowth  decimal.NullDecimal `json:"avg_yoy_q_earnings_growth" db:"avg_yoy_q_earnings_growth"`
	TotalMarketCap         decimal.NullDecimal `json:"total_market_cap" db:"total_market_cap"`
	WeightedMaxDrawdown1Yr decimal.NullDecimal `json:"weighted_max_drawdown_1yr" db:"weighted_max_drawdown_1yr"`
}

// CompanyCount is the two-field projection served by the companies endpoint
type CompanyCount struct {
	SubSector      string `json:"sub_sector" db:"sub_sector"`
	TotalCompanies int    `json:"total_companies" db:"total_companies"`
}
