package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/arnizwnd/redis-tugas/internal/domain/auth"
	"github.com/jackc/pgx/v5"
)

// TokenRepository authenticates API tokens against the authtoken_token table
type TokenRepository struct {
	db Querier
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db Querier) *TokenRepository {
	return &TokenRepository{db: db}
}

// Authenticate implements auth.Authenticator
func (r *TokenRepository) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.username
		FROM %s t
		JOIN %s u ON u.id = t.user_id
		WHERE t.key = $1 AND u.is_active
	`, tokenTable, userTable)

	p := &auth.Principal{Source: "db"}
	err := r.db.QueryRow(ctx, query, token).Scan(&p.UserID, &p.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up token: %w", err)
	}

	return p, nil
}
