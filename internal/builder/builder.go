package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/storeline/audit-backend/internal/api"
	reportapi "github.com/storeline/audit-backend/internal/api/report"
	"github.com/storeline/audit-backend/internal/config"
	"github.com/storeline/audit-backend/internal/integration/imagesource"
	"github.com/storeline/audit-backend/internal/integration/storage"
	"github.com/storeline/audit-backend/internal/integration/transform"
	"github.com/storeline/audit-backend/internal/pkg/validator"
	pdfreport "github.com/storeline/audit-backend/internal/report"
	"github.com/storeline/audit-backend/internal/repository"
	reportuc "github.com/storeline/audit-backend/internal/usecase/report"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	reportRepo := repository.NewReportPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var imageConnector reportuc.ImageNormalizer
	var storageConnector reportuc.StorageConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		imageConnector = imagesource.NewMockConnector(logger)
		storageConnector = storage.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		deriver := transform.NewDeriver(cfg.TransformCfg)
		imageConnector = imagesource.NewConnector(cfg.ImageSourceCfg, deriver, logger)
		storageConnector = storage.NewConnector(cfg.StorageCfg, logger)
	}

	// Initialize validators
	auditValidator := validator.NewAuditValidator(cfg.PayloadCfg)
	logger.Info("Validators initialized")

	// Initialize use cases
	reportUC := reportuc.NewUsecase(
		pdfreport.NewBuilder(),
		imageConnector,
		storageConnector,
		reportRepo,
		cfg.ImageSourceCfg.FetchConcurrency,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	reportHandler := reportapi.NewHandler(reportUC, auditValidator)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(reportHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. Write timeout is generous because a single
	// request may fetch dozens of photos before responding.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 150 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}
