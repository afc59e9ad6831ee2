package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/accounts/internal/accounts/http"
	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/internal/accounts/store"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/postgres"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/cryptox"
	"github.com/aussiebroadwan/accounts/pkg/httpx"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v1.0.0"
)

// Application encapsulates the accounts service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	tokens *jwtx.TokenIssuer
	hasher *cryptox.BcryptHasher

	// Services
	authService    *service.AuthService
	accountService *service.AccountService
	seedService    *service.SeedService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	tokens, err := InitTokenIssuer(app.cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokens: %w", err)
	}
	app.tokens = tokens

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if app.cfg.SeedAccounts {
		ctx := slogx.WithContext(context.Background(), app.logger)
		if _, err := app.seedService.Seed(ctx); err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed accounts: %w", err)
		}
	}

	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("accounts service starting",
		"port", app.cfg.HTTP.Port,
		"driver", app.cfg.Database.Driver,
		"version", BuildVersion,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.HTTP.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.Database.Driver {
	case DriverPostgres:
		db, err = postgres.NewStore(app.cfg.Database.URL)
	default:
		db, err = sqlite.NewStore(app.cfg.Database.File)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.Database.Driver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.hasher = cryptox.NewBcryptHasher(app.cfg.BcryptRounds)

	app.authService = &service.AuthService{
		Store:  app.db,
		Hasher: app.hasher,
		Tokens: app.tokens,
	}
	app.accountService = &service.AccountService{
		Store:  app.db,
		Hasher: app.hasher,
	}
	app.seedService = &service.SeedService{
		Store:  app.db,
		Hasher: app.hasher,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	opts := httpapi.RouterOptions{
		APIPrefix:    app.cfg.HTTP.APIPrefix,
		BuildVersion: BuildVersion,
		Production:   app.cfg.IsProduction(),
		CORSOrigin:   app.cfg.HTTP.CORSOrigin,
	}
	if rl := app.cfg.RateLimit; rl.Enabled {
		opts.GlobalRateLimit = httpx.NewRateLimitConfig(rl.MaxRequests, rl.Window, "")
		opts.AuthRateLimit = httpx.NewRateLimitConfig(rl.AuthMaxRequests, rl.Window, "")
	}

	router := httpapi.NewRouter(opts, app.tokens, app.db, app.logger)

	// Wire services to router
	router.AuthService = app.authService
	router.AccountService = app.accountService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
