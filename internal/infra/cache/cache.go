// Package cache stores serialized list responses for a short TTL.
package cache

import (
	"context"
	"strings"
	"time"
)

// DefaultTTL is how long a list response stays cached
const DefaultTTL = 60 * time.Second

// Cache is a shared key/value store with per-entry expiry.
// Values are opaque bytes; callers store serialized responses.
type Cache interface {
	// Get returns the value and true on hit, nil and false on miss or expiry
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous entry.
	// The entry expires ttl after this call.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error

	// Stats returns hit/miss counters since start
	Stats() Stats
}

// Stats holds cache statistics
type Stats struct {
	Driver  string  `json:"driver"`
	Size    int     `json:"size,omitempty"`
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"` // percentage
}

func newStats(driver string, size int, hits, misses int64) Stats {
	hitRate := float64(0)
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return Stats{Driver: driver, Size: size, Hits: hits, Misses: misses, HitRate: hitRate}
}

const (
	absentParam = "~"
	presentMark = "="
)

var keyEscaper = strings.NewReplacer(`\`, `\\`, `:`, `\:`)

// Key builds a deterministic cache key from an endpoint prefix and the
// ordered raw parameter values. A nil value (parameter not sent), an empty
// string and a concrete value always encode differently, and separators
// inside values are escaped, so distinct tuples never share a key.
func Key(prefix string, params ...*string) string {
	var b strings.Builder
	b.WriteString(prefix)
	for _, p := range params {
		b.WriteByte(':')
		if p == nil {
			b.WriteString(absentParam)
			continue
		}
		b.WriteString(presentMark)
		b.WriteString(keyEscaper.Replace(*p))
	}
	return b.String()
}
