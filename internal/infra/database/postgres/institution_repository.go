package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/domain/institution"
)

// InstitutionRepository implements institution.Repository using PostgreSQL
type InstitutionRepository struct {
	db Querier
}

// NewInstitutionRepository creates a new InstitutionRepository
func NewInstitutionRepository(db Querier) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

// List returns trades matching every set field of the filter
func (r *InstitutionRepository) List(ctx context.Context, filter institution.Filter) ([]institution.Trade, error) {
	query, args, err := buildInstitutionQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query institution trades: %w", err)
	}
	defer rows.Close()

	trades := []institution.Trade{}
	for rows.Next() {
		var (
			t               institution.Trade
			date            time.Time
			sellers, buyers []byte
		)
		if err := rows.Scan(&t.ID, &t.Symbol, &date, &sellers, &buyers); err != nil {
			return nil, fmt.Errorf("failed to scan institution trade: %w", err)
		}
		t.Date = institution.NewDate(date)

		if t.TopSellers, err = decodeEntries(sellers); err != nil {
			return nil, fmt.Errorf("failed to decode top_sellers of %d: %w", t.ID, err)
		}
		if t.TopBuyers, err = decodeEntries(buyers); err != nil {
			return nil, fmt.Errorf("failed to decode top_buyers of %d: %w", t.ID, err)
		}
		trades = append(trades, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating institution trades: %w", err)
	}

	return trades, nil
}

// buildInstitutionQuery translates the filter into SQL predicates joined with AND
func buildInstitutionQuery(filter institution.Filter) (string, []any, error) {
	whereClauses := []string{}
	args := []any{}
	argIndex := 1

	// Name: an entry with this exact name in either list (jsonb containment)
	if filter.Name != "" {
		probe, err := json.Marshal([]institution.Entry{{Name: filter.Name}})
		if err != nil {
			return "", nil, fmt.Errorf("failed to encode name probe: %w", err)
		}
		whereClauses = append(whereClauses,
			fmt.Sprintf("(top_sellers @> $%d::jsonb OR top_buyers @> $%d::jsonb)", argIndex, argIndex))
		args = append(args, string(probe))
		argIndex++
	}

	if filter.Symbol != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("symbol ILIKE $%d", argIndex))
		args = append(args, "%"+escapeLike(filter.Symbol)+"%")
		argIndex++
	}

	if filter.Date != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("date = $%d", argIndex))
		args = append(args, *filter.Date)
		argIndex++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = "WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT id, symbol, date, top_sellers, top_buyers
		FROM %s
		%s
		ORDER BY id
	`, institutionsTable, whereClause)

	return query, args, nil
}

func decodeEntries(raw []byte) ([]institution.Entry, error) {
	entries := []institution.Entry{}
	if len(raw) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []institution.Entry{}
	}
	return entries, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
