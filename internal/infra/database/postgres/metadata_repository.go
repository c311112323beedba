package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/arnizwnd/redis-tugas/internal/domain/metadata"
)

// MetadataRepository implements metadata.Repository using PostgreSQL
type MetadataRepository struct {
	db Querier
}

// NewMetadataRepository creates a new MetadataRepository
func NewMetadataRepository(db Querier) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// List returns companies whose slug, sector and sub-sector id are each in
// the requested sets
func (r *MetadataRepository) List(ctx context.Context, filter metadata.Filter) ([]metadata.Company, error) {
	query, args := buildMetadataQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	companies := []metadata.Company{}
	for rows.Next() {
		var c metadata.Company
		err := rows.Scan(
			&c.Slug, &c.CompanyName, &c.Symbol, &c.Sector, &c.SubSector,
			&c.SubSectorID, &c.Industry, &c.SubIndustry,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metadata: %w", err)
	}

	return companies, nil
}

func buildMetadataQuery(filter metadata.Filter) (string, []any) {
	whereClauses := []string{}
	args := []any{}
	argIndex := 1

	if len(filter.Slugs) > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("slug = ANY($%d)", argIndex))
		args = append(args, filter.Slugs)
		argIndex++
	}

	if len(filter.Sectors) > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("sector = ANY($%d)", argIndex))
		args = append(args, filter.Sectors)
		argIndex++
	}

	if len(filter.SubSectorIDs) > 0 {
		whereClauses = append(whereClauses, fmt.Sprintf("sub_sector_id = ANY($%d)", argIndex))
		args = append(args, filter.SubSectorIDs)
		argIndex++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT slug, company_name, symbol, sector, sub_sector,
		       sub_sector_id, industry, sub_industry
		FROM %s
		%s
		ORDER BY slug
	`, metadataTable, whereClause)

	return query, args
}
