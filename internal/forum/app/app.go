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

	httpapi "github.com/aussiebroadwan/forumhub/internal/forum/http"
	"github.com/aussiebroadwan/forumhub/internal/forum/service"
	"github.com/aussiebroadwan/forumhub/internal/forum/session"
	"github.com/aussiebroadwan/forumhub/internal/forum/store"
	"github.com/aussiebroadwan/forumhub/internal/forum/store/drivers/postgres"
	"github.com/aussiebroadwan/forumhub/internal/forum/store/drivers/sqlite"
	"github.com/aussiebroadwan/forumhub/pkg/cryptox"
	"github.com/aussiebroadwan/forumhub/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application owns the forum service and everything it depends on.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	sessions session.Store
	keys     *SessionKeys
	hasher   *cryptox.PasswordHasher

	userService       *service.UserService
	sessionService    *service.SessionService
	threadService     *service.ThreadService
	postService       *service.PostService
	moderationService *service.ModerationService
	bootstrapService  *service.BootstrapService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "forum-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	pepper, err := cryptox.LoadOrCreatePepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	if app.hasher, err = cryptox.NewPasswordHasher(pepper); err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	if app.keys, err = InitSessionKeys(cfg, app.logger); err != nil {
		return nil, err
	}

	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	if err := app.initSessions(ctx); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("forum service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"database", app.cfg.DatabaseDriver,
		"bootstrap_enabled", app.bootstrapService.Enabled(),
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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

// Shutdown drains in-flight requests then closes the session backend and
// the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down forum service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.sessions.Close(); err != nil {
		app.logger.Error("error closing session store", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("forum service stopped")
	return nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// OpenStore connects the configured database driver and applies pending
// migrations.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	var (
		db  store.Store
		err error
	)
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		dsn := cfg.DatabaseFile
		if dsn != ":memory:" {
			dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dsn)
		}
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return err
	}
	app.db = db

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initSessions(ctx context.Context) error {
	if app.cfg.RedisURL == "" {
		app.sessions = session.NewMemoryStore()
		app.logger.Warn("REDIS_URL not set; sessions are kept in memory and lost on restart")
		return nil
	}

	rs, err := session.NewRedisStore(ctx, app.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to connect session store: %w", err)
	}
	app.sessions = rs
	app.logger.Info("redis session store connected")
	return nil
}

func (app *Application) initServices() {
	now := service.Clock(func() time.Time { return time.Now().UTC() })

	app.userService = &service.UserService{
		Store:  app.db,
		Hasher: app.hasher,
		Now:    now,
	}
	app.sessionService = &service.SessionService{
		Users:    app.userService,
		Store:    app.db,
		Sessions: app.sessions,
		Signer:   app.keys.Signer,
		Verifier: app.keys.Verifier,
		Issuer:   app.cfg.Issuer,
		TTL:      app.cfg.SessionTTL,
		Now:      now,
	}
	app.threadService = &service.ThreadService{Store: app.db, Now: now}
	app.postService = &service.PostService{Store: app.db, Now: now}
	app.moderationService = &service.ModerationService{Store: app.db, Now: now}
	app.bootstrapService = &service.BootstrapService{
		Store:  app.db,
		Hasher: app.hasher,
		Token:  app.cfg.BootstrapToken,
		Now:    now,
	}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		BuildVersion,
		app.db,
		app.sessions,
		app.logger,
	)

	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.ThreadService = app.threadService
	router.PostService = app.postService
	router.ModerationService = app.moderationService
	router.BootstrapService = app.bootstrapService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
