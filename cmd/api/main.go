package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retailvision/internal/config"
	"retailvision/internal/database"
	"retailvision/internal/handler"
	"retailvision/internal/repository"
	"retailvision/internal/router"
	"retailvision/internal/seed"
	"retailvision/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting retailvision CMS API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dataset, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	// Saved layouts go to PostgreSQL when enabled, otherwise they live in memory
	var layoutRepo repository.LayoutRepository
	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		layoutRepo = repository.NewLayoutRepository(pool, logger)
	} else {
		logger.Info().Msg("database disabled, saved layouts are kept in memory")
		layoutRepo = repository.NewMemoryLayoutRepository(logger)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(dataset, logger)
	flowRepo := repository.NewFlowRepository(dataset.Flows, logger)
	wizardRepo := repository.NewWizardRepository(logger)
	boardRepo := repository.NewBoardRepository()

	// Initialize services
	retailerService := service.NewRetailerService(catalogRepo, logger)
	storeService := service.NewStoreService(catalogRepo, logger)
	productService := service.NewProductService(catalogRepo, logger)
	configurationService := service.NewConfigurationService(flowRepo, logger)
	wizardService := service.NewWizardService(wizardRepo, logger)
	planogramService := service.NewPlanogramService(catalogRepo, boardRepo, layoutRepo, logger)
	dashboardService := service.NewDashboardService(catalogRepo, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Dashboard:     handler.NewDashboardHandler(dashboardService, logger),
		Catalog:       handler.NewCatalogHandler(retailerService, storeService, productService, logger),
		Configuration: handler.NewConfigurationHandler(configurationService, logger),
		Wizard:        handler.NewWizardHandler(wizardService, logger),
		Planogram:     handler.NewPlanogramHandler(planogramService, logger),
	}, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// loadDataset reads the configured seed file, trying S3 first when enabled.
// Without a seed file the built-in sample data is served.
func loadDataset(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*seed.Dataset, error) {
	if cfg.Seed.File == "" {
		logger.Info().Msg("no seed file configured, using built-in sample data")
		return seed.Default(), nil
	}

	fileLoader := seed.NewFileLoader(logger)
	var s3Loader seed.Loader

	if cfg.S3.Enabled {
		l, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for seed file (S3 disabled)")
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)
	return loader.Load(ctx, cfg.Seed.File)
}
