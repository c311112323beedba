package api

import (
	"github.com/arnizwnd/redis-tugas/internal/api/handlers"
	"github.com/arnizwnd/redis-tugas/internal/api/middleware"
	"github.com/arnizwnd/redis-tugas/internal/domain/auth"
	"github.com/arnizwnd/redis-tugas/internal/domain/institution"
	"github.com/arnizwnd/redis-tugas/internal/domain/metadata"
	"github.com/arnizwnd/redis-tugas/internal/domain/report"
	"github.com/arnizwnd/redis-tugas/internal/infra/cache"
	"github.com/arnizwnd/redis-tugas/internal/infra/database/postgres"
	"github.com/arnizwnd/redis-tugas/internal/pkg/config"
	"github.com/arnizwnd/redis-tugas/internal/pkg/logger"
	"github.com/arnizwnd/redis-tugas/internal/service/listing"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Dependencies are the backends the router serves from
type Dependencies struct {
	Database      handlers.DatabaseHealth
	Cache         cache.Cache
	Authenticator auth.Authenticator
	Institutions  institution.Repository
	Metadata      metadata.Repository
	Reports       report.Repository
}

// NewDependencies wires the Postgres repositories and token authentication
func NewDependencies(cfg *config.Config, pool *postgres.Pool, c cache.Cache) Dependencies {
	authenticators := auth.Chain{auth.NewStaticTokens(cfg.Auth.StaticTokens)}
	if cfg.Auth.TokenTableDB {
		authenticators = append(authenticators, postgres.NewTokenRepository(pool))
	}

	return Dependencies{
		Database:      pool,
		Cache:         c,
		Authenticator: authenticators,
		Institutions:  postgres.NewInstitutionRepository(pool),
		Metadata:      postgres.NewMetadataRepository(pool),
		Reports:       postgres.NewReportRepository(pool),
	}
}

// Router holds all dependencies for API routing
type Router struct {
	engine             *gin.Engine
	config             *config.Config
	authenticator      auth.Authenticator
	healthHandler      *handlers.HealthHandler
	institutionHandler *handlers.InstitutionHandler
	metadataHandler    *handlers.MetadataHandler
	reportHandler      *handlers.ReportHandler
}

// NewRouter creates a new API router with all dependencies
func NewRouter(cfg *config.Config, deps Dependencies, version string) *Router {
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	listingService := listing.NewService(deps.Cache, cfg.Cache.TTL)

	router := &Router{
		engine:             engine,
		config:             cfg,
		authenticator:      deps.Authenticator,
		healthHandler:      handlers.NewHealthHandler(deps.Database, deps.Cache, version),
		institutionHandler: handlers.NewInstitutionHandler(deps.Institutions, listingService),
		metadataHandler:    handlers.NewMetadataHandler(deps.Metadata, listingService),
		reportHandler:      handlers.NewReportHandler(deps.Reports, listingService),
	}

	router.setupMiddlewares()
	router.setupRoutes()

	log.Info().
		Str("cache_driver", deps.Cache.Stats().Driver).
		Dur("cache_ttl", listingService.TTL()).
		Msg("Routes registered")

	return router
}

// setupMiddlewares configures all global middlewares
func (r *Router) setupMiddlewares() {
	// Recovery middleware (must be first)
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	loggingConfig := middleware.LoggingConfig{
		SkipPaths: []string{"/health", "/health/ready"},
	}
	if r.config.Logging.FileEnabled {
		accessLogger := logger.NewAccessLogger(
			r.config.Logging.FilePath,
			r.config.Logging.RotationSize,
			r.config.Logging.RetentionDays,
		)
		loggingConfig.AccessLogger = &accessLogger
	}
	r.engine.Use(middleware.Logging(loggingConfig))

	r.engine.Use(middleware.CORS(middleware.DefaultCORSConfig(r.config.Server.AllowedOrigins)))
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Health checks (no /api prefix)
	r.engine.GET("/health", r.healthHandler.Health)
	r.engine.GET("/health/ready", r.healthHandler.Ready)
	r.engine.GET("/api/health/detailed", r.healthHandler.Detailed)

	// Public
	r.engine.GET("/get-reports-companies-trade", r.reportHandler.ListCompanies)

	// Token required
	protected := r.engine.Group("", middleware.Auth(r.authenticator))
	{
		protected.GET("/get-institution-trade", r.institutionHandler.List)
		protected.GET("/get-metadata-trade", r.metadataHandler.List)
		protected.GET("/get-reports-trade", r.reportHandler.List)
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
