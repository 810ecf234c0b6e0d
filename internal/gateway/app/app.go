package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/darkaihq/darkgate/internal/gateway/gate"
	httpapi "github.com/darkaihq/darkgate/internal/gateway/http"
	"github.com/darkaihq/darkgate/internal/gateway/replay"
	"github.com/darkaihq/darkgate/internal/gateway/service"
	"github.com/darkaihq/darkgate/internal/gateway/store"
	"github.com/darkaihq/darkgate/internal/gateway/store/drivers/sqlite"
	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/jwtx"
	"github.com/darkaihq/darkgate/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v2.0.0"
)

// Application encapsulates the gateway with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	codec  *jwtx.Codec
	redis  *redis.Client // nil when the in-process replay cache is in use
	replay replay.Cache

	// Services
	clientService       *service.ClientService
	tokenService        *service.TokenService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "darkgate",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	app.initReplayCache()

	app.codec = &jwtx.Codec{
		Secret: []byte(cfg.SecretKey),
		Issuer: cfg.Issuer,
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("gateway starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("gateway stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initReplayCache selects the replay backend: redis behind an in-process
// failover when an address is configured, plain in-process otherwise.
func (app *Application) initReplayCache() {
	if app.cfg.RedisAddr == "" {
		app.replay = replay.NewMemory()
		app.logger.Info("replay cache using in-process backend")
		return
	}

	app.redis = redis.NewClient(&redis.Options{Addr: app.cfg.RedisAddr})
	app.replay = replay.NewFailover(replay.NewRedis(app.redis), app.logger)
	app.logger.Info("replay cache using redis backend", "addr", app.cfg.RedisAddr)
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.clientService = &service.ClientService{Store: app.db}
	app.tokenService = &service.TokenService{
		Codec:     app.codec,
		Store:     app.db,
		AccessTTL: app.cfg.AccessTokenTTL,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	g := &gate.Gate{
		Replay:      app.replay,
		Tokens:      app.codec,
		Clients:     app.db.Clients(),
		Revocations: app.tokenService,
		Exempt:      httpapi.ExemptPaths,
		ReplayTTL:   app.cfg.ReplayTTL,
		MaxSkew:     app.cfg.MaxSkew,
	}

	router := httpapi.NewRouter(g, BuildVersion, app.logger)
	router.Upstream = upstream.New(app.cfg.UpstreamBaseURL)
	router.ClientService = app.clientService
	router.TokenService = app.tokenService
	if app.redis != nil {
		router.CheckCache = func(r *http.Request) error {
			return app.redis.Ping(r.Context()).Err()
		}
	}
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
