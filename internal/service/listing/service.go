// Package listing serves list endpoints through the result cache.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/infra/cache"
	applogger "github.com/arnizwnd/redis-tugas/internal/pkg/logger"
	"github.com/rs/zerolog/log"
)

// Service memoizes serialized list results for a fixed TTL.
// Concurrent misses on one key each query the backend; the last Set wins.
type Service struct {
	cache cache.Cache
	ttl   time.Duration
}

// Result is a serialized JSON array ready to be written to the client
type Result struct {
	Body   []byte
	Cached bool
}

// NewService creates a listing service. ttl <= 0 uses cache.DefaultTTL.
func NewService(c cache.Cache, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Service{cache: c, ttl: ttl}
}

// TTL returns how long results stay cached
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Fetch returns the cached list under key, or calls load, serializes the
// records and caches them before returning.
// A cache failure never fails the request; a load failure always does.
func Fetch[T any](ctx context.Context, s *Service, key string, load func(context.Context) ([]T, error)) (Result, error) {
	requestID := applogger.RequestIDFrom(ctx)

	body, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Str("cache_key", key).
			Msg("Cache read failed, querying database")
	} else if ok {
		log.Debug().Str("request_id", requestID).Str("cache_key", key).Msg("Cache retrieved")
		return Result{Body: body, Cached: true}, nil
	}

	log.Debug().Str("request_id", requestID).Str("cache_key", key).Msg("Cache miss, hitting DB")

	records, err := load(ctx)
	if err != nil {
		return Result{}, err
	}
	if records == nil {
		records = []T{}
	}

	body, err = json.Marshal(records)
	if err != nil {
		return Result{}, fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	if err := s.cache.Set(ctx, key, body, s.ttl); err != nil {
		log.Warn().Err(err).Str("request_id", requestID).Str("cache_key", key).
			Msg("Cache write failed, response not cached")
	}

	log.Debug().
		Str("request_id", requestID).
		Str("cache_key", key).
		Int("records", len(records)).
		Dur("ttl", s.ttl).
		Msg("Cached list result")

	return Result{Body: body}, nil
}
