package metadata

// Company is the sector classification of one listed company
// Maps to api_metadata table
type Company struct {
	Slug        string  `json:"slug" db:"slug"`
	CompanyName string  `json:"company_name" db:"company_name"`
	Symbol      *string `json:"symbol" db:"symbol"`
	Sector      string  `json:"sector" db:"sector"`
	SubSector   string  `json:"sub_sector" db:"sub_sector"`
	SubSectorID int64   `json:"sub_sector_id" db:"sub_sector_id"`
	Industry    *string `json:"industry" db:"industry"`
	SubIndustry *string `json:"sub_industry" db:"sub_industry"`
}
