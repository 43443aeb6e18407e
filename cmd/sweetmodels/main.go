// Sweet Models API - device and account service for the admin frontend.
//
// This is the main entry point for the Sweet Models API service. It wires
// the SQLite store, account seeding, session issuance, and the HTTP API,
// then waits for a shutdown signal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sweetmodels/sweet-models-api/internal/account"
	"github.com/sweetmodels/sweet-models-api/internal/api"
	"github.com/sweetmodels/sweet-models-api/internal/infrastructure/config"
	"github.com/sweetmodels/sweet-models-api/internal/infrastructure/database"
	"github.com/sweetmodels/sweet-models-api/internal/infrastructure/logging"
	"github.com/sweetmodels/sweet-models-api/internal/registry"
	"github.com/sweetmodels/sweet-models-api/internal/session"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.1"
var version = "1.0.0"

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting Sweet Models API", "version", version)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	// Apply schema
	if schemaErr := db.EnsureSchema(ctx); schemaErr != nil {
		return fmt.Errorf("applying schema: %w", schemaErr)
	}
	log.Info("database schema ready")

	// Account store + first-boot seeding
	accountRepo := account.NewRepository(db.DB)
	if _, seedErr := account.SeedAdmin(ctx, accountRepo, log.Logger); seedErr != nil {
		return fmt.Errorf("seeding admin account: %w", seedErr)
	}

	// Session issuer (Argon2id verification by default)
	issuer := session.NewIssuer(accountRepo, nil,
		cfg.Security.JWT.Secret, cfg.Security.JWT.AccessTokenTTL)

	// Device registry
	deviceRegistry := registry.NewRegistry(registry.NewRepository(db.DB))
	deviceRegistry.SetLogger(log)

	// HTTP API server
	server, err := api.New(api.Deps{
		Config:   cfg.API,
		Logger:   log.With("component", "api"),
		Issuer:   issuer,
		Registry: deviceRegistry,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}

	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	// Verify everything came up healthy
	if err := healthCheck(ctx, db, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	log.Info("initialisation complete, waiting for shutdown signal",
		"address", fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port),
	)

	// Wait for shutdown signal
	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server (drains in-flight requests)
	// 2. Database

	log.Info("Sweet Models API stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SWEETMODELS_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SWEETMODELS_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies the store and server are healthy.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - db: Database connection to check
//   - server: API server to check
//
// Returns:
//   - error: First health check failure, or nil if all healthy
func healthCheck(ctx context.Context, db *database.DB, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	return nil
}
