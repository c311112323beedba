package auth

import (
	"context"
	"errors"
)

var (
	// ErrMissingCredentials means no Authorization header was sent
	ErrMissingCredentials = errors.New("authentication credentials were not provided")
	// ErrInvalidToken means the token is unknown or its user is inactive
	ErrInvalidToken = errors.New("invalid token")
)

// Principal is an authenticated API caller
type Principal struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Source   string `json:"source"` // db | static
}

// Authenticator resolves an API token to a caller.
// Returns ErrInvalidToken when the token is not recognized.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Principal, error)
}
