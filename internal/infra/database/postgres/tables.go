package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Tables owned by the upstream data pipeline; this service only reads them
const (
	institutionsTable = "api_institutions"
	metadataTable     = "api_metadata"
	reportsTable      = "api_reports"
	tokenTable        = "authtoken_token"
	userTable         = "auth_user"
)

// Querier is the part of *Pool the repositories need
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
