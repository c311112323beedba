package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/pkg/config"
	"github.com/rs/zerolog/log"
)

const (
	redisKeyPrefix  = "tradeapi:"
	janitorInterval = time.Minute
)

// New builds the cache selected by cfg.Cache.Driver.
// The returned close func releases the backend and stops background work.
func New(ctx context.Context, cfg *config.Config) (Cache, func(), error) {
	switch cfg.Cache.Driver {
	case "memory":
		mem := NewMemory()
		janitorCtx, cancel := context.WithCancel(ctx)
		go mem.RunJanitor(janitorCtx, janitorInterval)

		log.Info().Dur("ttl", cfg.Cache.TTL).Msg("✅ In-memory result cache ready")
		return mem, cancel, nil

	case "redis":
		r := NewRedis(NewRedisClient(cfg.Redis), redisKeyPrefix)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := r.Ping(pingCtx); err != nil {
			r.Close()
			return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Redis.Addr(), err)
		}

		log.Info().
			Str("addr", cfg.Redis.Addr()).
			Int("db", cfg.Redis.DB).
			Dur("ttl", cfg.Cache.TTL).
			Msg("✅ Redis result cache connected")
		return r, func() {
			if err := r.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close redis client")
			}
		}, nil
	}

	return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
}
