package main

import (
	"fmt"
	"log/slog"

	"github.com/goop-edu/goop-api/internal/config"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/platform/memory"
	"github.com/goop-edu/goop-api/internal/service"
	"github.com/goop-edu/goop-api/internal/service/auth"
	"github.com/goop-edu/goop-api/internal/store"
)

// application holds the assembled dependencies of the server. Everything is
// wired once at startup and shared by the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	recordStore store.RecordStore

	jwtService        auth.JWTService
	assessmentService *service.AssessmentService
	projectService    *service.ProjectService
}

// initializeApp loads configuration and sets up application components.
func initializeApp() (*application, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"seed_demo_data", cfg.Store.SeedDemoData)

	// The record store keeps everything in memory; state lives and dies
	// with the process.
	var recordStore *memory.Store
	if cfg.Store.SeedDemoData {
		recordStore = memory.NewStore(appLogger)
	} else {
		recordStore = memory.NewEmptyStore(appLogger)
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            appLogger,
		recordStore:       recordStore,
		jwtService:        jwtService,
		assessmentService: service.NewAssessmentService(recordStore, appLogger),
		projectService:    service.NewProjectService(recordStore, appLogger),
	}, nil
}

// cleanup releases application resources before shutdown. The in-memory store
// needs no teardown; the hook exists for symmetry with startup.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
