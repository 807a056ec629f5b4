package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kevinjohn-15/IWP-CIA-3/internal/app/controllers"
	appRepos "github.com/kevinjohn-15/IWP-CIA-3/internal/app/repositories"
	appRoutes "github.com/kevinjohn-15/IWP-CIA-3/internal/app/routes"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/app/schema"
	appServices "github.com/kevinjohn-15/IWP-CIA-3/internal/app/services"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/config"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/db"
	appMiddleware "github.com/kevinjohn-15/IWP-CIA-3/internal/middleware"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/logger"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/pkg/validation"
	"github.com/kevinjohn-15/IWP-CIA-3/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FacultyService    appServices.FacultyService // Interface type
	FacultyController *appControllers.FacultyController
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// An empty configPath falls back to configs/config.yaml.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, applies the schema
// and seeds the faculty table when it is empty. Any failure here aborts
// startup.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Apply schema
	lgr.Info().Str("path", cfg.Bootstrap.SchemaPath).Msg("Applying database schema...")
	applier := schema.NewApplier(database)
	if err := applier.ApplyFile(context.Background(), cfg.Bootstrap.SchemaPath); err != nil {
		lgr.Error().Err(err).Msg("Database schema error")
		dbPool.Close()
		return nil, fmt.Errorf("database schema failed: %w", err)
	}
	lgr.Info().Msg("Database schema successfully applied.")

	// Seed initial data (only runs when the table is empty)
	if _, err := seed.Run(context.Background(), dbPool, cfg.Bootstrap.SeedPath, lgr); err != nil {
		lgr.Error().Err(err).Msg("Database seed error")
		dbPool.Close()
		return nil, fmt.Errorf("database seed failed: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)

	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterRules(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register custom validators")
	}

	router := gin.Default()
	router.Use(appMiddleware.RequestID())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.FacultyController)

	return router
}
