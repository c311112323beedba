package auth

import (
	"context"
	"crypto/subtle"
	"errors"
)

// StaticTokens authenticates against a fixed token list from configuration
type StaticTokens struct {
	tokens []string
}

// NewStaticTokens creates a StaticTokens authenticator
func NewStaticTokens(tokens []string) *StaticTokens {
	return &StaticTokens{tokens: tokens}
}

// Authenticate implements Authenticator
func (s *StaticTokens) Authenticate(_ context.Context, token string) (*Principal, error) {
	for _, t := range s.tokens {
		if subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
			return &Principal{Username: "api-token", Source: "static"}, nil
		}
	}
	return nil, ErrInvalidToken
}

// Chain tries each authenticator in order.
// An ErrInvalidToken moves on to the next one; any other error stops the chain.
type Chain []Authenticator

// Authenticate implements Authenticator
func (c Chain) Authenticate(ctx context.Context, token string) (*Principal, error) {
	for _, a := range c {
		p, err := a.Authenticate(ctx, token)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, ErrInvalidToken) {
			return nil, err
		}
	}
	return nil, ErrInvalidToken
}
