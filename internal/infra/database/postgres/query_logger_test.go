package postgres

import (
	"bytes"
	"context"
	"testing"
	"time"

	applogger "github.com/arnizwnd/redis-tugas/internal/pkg/logger"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestPgxZerologAdapter_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewPgxZerologAdapter(zerolog.New(&buf))

	ctx := applogger.WithRequestID(context.Background(), "req-42")
	adapter.Log(ctx, tracelog.LogLevelInfo, "Query", map[string]any{
		"sql":  "SELECT 1",
		"time": 250 * time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "Slow query detected")
	assert.Contains(t, out, `"request_id":"req-42"`)
	assert.Contains(t, out, `"duration_ms":250`)
}

func TestPgxZerologAdapter_FastQuery(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewPgxZerologAdapter(zerolog.New(&buf))

	adapter.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{
		"sql":  "SELECT 1",
		"time": time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"message":"Query"`)
	assert.NotContains(t, out, "request_id")
}

func TestNewQueryTracer_Level(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelInfo, NewQueryTracer(zerolog.Nop(), "info").LogLevel)
	assert.Equal(t, tracelog.LogLevelDebug, NewQueryTracer(zerolog.Nop(), "debug").LogLevel)
}
