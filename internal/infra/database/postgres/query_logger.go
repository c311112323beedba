package postgres

import (
	"context"
	"time"

	applogger "github.com/arnizwnd/redis-tugas/internal/pkg/logger"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// slowQueryThreshold promotes query logs to WARN
const slowQueryThreshold = 100 * time.Millisecond

// NewQueryTracer builds a pgx tracer that writes to logger at the level
// matching the application log level
func NewQueryTracer(logger zerolog.Logger, level string) *tracelog.TraceLog {
	logLevel := tracelog.LogLevelDebug
	switch level {
	case "info":
		logLevel = tracelog.LogLevelInfo
	case "warn":
		logLevel = tracelog.LogLevelWarn
	case "error":
		logLevel = tracelog.LogLevelError
	}

	return &tracelog.TraceLog{
		Logger:   NewPgxZerologAdapter(logger),
		LogLevel: logLevel,
	}
}

// PgxZerologAdapter adapts zerolog.Logger to pgx's tracelog.Logger interface
type PgxZerologAdapter struct {
	logger zerolog.Logger
}

// NewPgxZerologAdapter creates a new adapter
func NewPgxZerologAdapter(logger zerolog.Logger) *PgxZerologAdapter {
	return &PgxZerologAdapter{logger: logger}
}

// Log implements tracelog.Logger
func (l *PgxZerologAdapter) Log(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var event *zerolog.Event

	switch level {
	case tracelog.LogLevelTrace:
		event = l.logger.Trace()
	case tracelog.LogLevelDebug:
		event = l.logger.Debug()
	case tracelog.LogLevelInfo:
		event = l.logger.Info()
	case tracelog.LogLevelWarn:
		event = l.logger.Warn()
	case tracelog.LogLevelError:
		event = l.logger.Error()
	default:
		event = l.logger.Info()
	}

	// Slow queries are always visible
	if d, ok := data["time"].(time.Duration); ok {
		if d > slowQueryThreshold && level > tracelog.LogLevelWarn {
			event = l.logger.Warn()
			msg = "⚠️  Slow query detected"
		}
		event = event.Int64("duration_ms", d.Milliseconds())
	}

	if requestID := applogger.RequestIDFrom(ctx); requestID != "" {
		event = event.Str("request_id", requestID)
	}

	for key, value := range data {
		if key == "time" {
			continue
		}
		event = event.Interface(key, value)
	}

	event.Msg(msg)
}
