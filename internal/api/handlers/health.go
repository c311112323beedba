package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/arnizwnd/redis-tugas/internal/api/response"
	"github.com/arnizwnd/redis-tugas/internal/infra/cache"
	"github.com/arnizwnd/redis-tugas/internal/infra/database/postgres"
	"github.com/gin-gonic/gin"
)

// DatabaseHealth reports database connectivity and pool usage.
// Implemented by *postgres.Pool.
type DatabaseHealth interface {
	Health(ctx context.Context) *postgres.HealthStatus
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db        DatabaseHealth
	cache     cache.Cache
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db DatabaseHealth, c cache.Cache, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		cache:     c,
		startTime: time.Now(),
		version:   version,
	}
}

// SimpleHealthResponse represents a simple health check response
type SimpleHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ReadyResponse represents a readiness check response
type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Message   string            `json:"message,omitempty"`
}

// DetailedHealthResponse represents detailed health information
type DetailedHealthResponse struct {
	Status        string                     `json:"status"`
	Version       string                     `json:"version"`
	UptimeSeconds int64                      `json:"uptime_seconds"`
	Timestamp     time.Time                  `json:"timestamp"`
	Components    map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status       string                 `json:"status"`
	ResponseTime string                 `json:"response_time"`
	Details      map[string]interface{} `json:"details,omitempty"`
	Message      string                 `json:"message,omitempty"`
}

// Health returns simple liveness check
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, SimpleHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// Ready reports whether the database and the result cache answer
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := make(map[string]string)
	message := ""

	if h.db.Health(ctx).Status == postgres.StatusUnhealthy {
		checks["database"] = "error"
		message = "Database connection failed"
	} else {
		checks["database"] = "ok"
	}

	if err := h.pingCache(ctx); err != nil {
		checks["cache"] = "error"
		if message == "" {
			message = "Cache connection failed"
		}
	} else {
		checks["cache"] = "ok"
	}

	status := "ready"
	statusCode := http.StatusOK
	if message != "" {
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, ReadyResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Message:   message,
	})
}

// Detailed returns pool and cache statistics
// GET /api/health/detailed
func (h *HealthHandler) Detailed(c *gin.Context) {
	ctx := c.Request.Context()
	components := make(map[string]ComponentHealth)

	dbHealth := h.db.Health(ctx)
	dbComponent := ComponentHealth{
		Status:       dbHealth.Status,
		ResponseTime: dbHealth.ResponseTime,
		Details: map[string]interface{}{
			"active_conns": dbHealth.ActiveConns,
			"idle_conns":   dbHealth.IdleConns,
			"total_conns":  dbHealth.TotalConns,
			"max_conns":    dbHealth.MaxConns,
		},
		Message: dbHealth.Error,
	}
	components["database"] = dbComponent

	start := time.Now()
	cacheErr := h.pingCache(ctx)
	stats := h.cache.Stats()
	cacheComponent := ComponentHealth{
		Status:       postgres.StatusHealthy,
		ResponseTime: time.Since(start).String(),
		Details: map[string]interface{}{
			"driver":   stats.Driver,
			"size":     stats.Size,
			"hits":     stats.Hits,
			"misses":   stats.Misses,
			"hit_rate": stats.HitRate,
		},
	}
	if cacheErr != nil {
		cacheComponent.Status = postgres.StatusUnhealthy
		cacheComponent.Message = cacheErr.Error()
	}
	components["cache"] = cacheComponent

	overallStatus := postgres.StatusHealthy
	for _, component := range components {
		switch component.Status {
		case postgres.StatusUnhealthy:
			overallStatus = postgres.StatusUnhealthy
		case postgres.StatusDegraded:
			if overallStatus != postgres.StatusUnhealthy {
				overallStatus = postgres.StatusDegraded
			}
		}
	}

	response.Success(c, DetailedHealthResponse{
		Status:        overallStatus,
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Timestamp:     time.Now(),
		Components:    components,
	})
}

func (h *HealthHandler) pingCache(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return h.cache.Ping(pingCtx)
}
