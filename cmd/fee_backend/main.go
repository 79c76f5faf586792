package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/school_fee_app/internal/core/ports/repositories"
	"github.com/SscSPs/school_fee_app/internal/core/services"
	"github.com/SscSPs/school_fee_app/internal/handlers"
	"github.com/SscSPs/school_fee_app/internal/middleware"
	"github.com/SscSPs/school_fee_app/internal/platform/config"
	"github.com/SscSPs/school_fee_app/internal/repositories/billingapi"
	"github.com/SscSPs/school_fee_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/school_fee_app/pkg/database"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title School Fee Backend API
// @version 1.0
// @description Charge accounts, payment reconciliation and fee reports for the school office.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	var logLevel slog.LevelVar
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: &logLevel}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logLevel.Set(cfg.LogLevel)

	ctx := context.Background()
	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize history store",
			slog.String("history_source", cfg.HistorySource), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("history_source", cfg.HistorySource))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories wires the repository ports to the configured history store.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.HistorySource {
	case config.HistorySourceBillingAPI:
		client, err := billingapi.NewClient(ctx, billingapi.Config{
			BaseURL: cfg.BillingAPIBaseURL,
			Token:   cfg.BillingAPIToken,
			Timeout: cfg.BillingAPITimeout,
		})
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Using billing api history store", slog.String("base_url", cfg.BillingAPIBaseURL))
		return billingapi.NewRepositoryProvider(client), func() {}, nil
	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}

// runMigrations applies all pending up migrations from cfg.MigrationsPath.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))

	// A separate database/sql handle through the pgx stdlib driver, as migrate requires one.
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
