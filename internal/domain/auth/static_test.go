package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	p   *Principal
	err error
}

func (s stubAuth) Authenticate(context.Context, string) (*Principal, error) {
	return s.p, s.err
}

func TestStaticTokens(t *testing.T) {
	a := NewStaticTokens([]string{"alpha", "beta"})

	p, err := a.Authenticate(context.Background(), "beta")
	require.NoError(t, err)
	assert.Equal(t, "static", p.Source)

	_, err = a.Authenticate(context.Background(), "gamma")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewStaticTokens(nil).Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChain(t *testing.T) {
	ctx := context.Background()
	dbUser := &Principal{UserID: 7, Username: "analyst", Source: "db"}

	t.Run("falls through invalid token", func(t *testing.T) {
		c := Chain{stubAuth{err: ErrInvalidToken}, stubAuth{p: dbUser}}
		p, err := c.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, dbUser, p)
	})

	t.Run("stops on backend error", func(t *testing.T) {
		boom := errors.New("connection refused")
		c := Chain{stubAuth{err: boom}, stubAuth{p: dbUser}}
		_, err := c.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty chain rejects", func(t *testing.T) {
		_, err := Chain{}.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
