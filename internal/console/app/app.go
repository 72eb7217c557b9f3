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

	httpapi "github.com/NazifToure01/AlloColis-admin/internal/console/http"
	"github.com/NazifToure01/AlloColis-admin/internal/session"
	"github.com/NazifToure01/AlloColis-admin/internal/store"
	"github.com/NazifToure01/AlloColis-admin/internal/store/drivers/memory"
	"github.com/NazifToure01/AlloColis-admin/internal/store/drivers/redis"
	"github.com/NazifToure01/AlloColis-admin/internal/store/drivers/sqlite"
	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
	"github.com/NazifToure01/AlloColis-admin/pkg/cryptox"
	"github.com/NazifToure01/AlloColis-admin/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	// MasterKeyEnv holds the key that seals the stored refresh token when no
	// key file is configured.
	MasterKeyEnv = "CONSOLE_MASTER_KEY"

	sealerInfo = "allocolis-console refresh token v1"
)

// Application is the console server with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db        store.Store
	client    *apisdk.Client
	session   *session.Manager
	keepAlive *session.KeepAlive

	server *http.Server
	router *httpapi.Router
}

// NewLogger builds the process logger from the configuration.
func NewLogger(cfg Config, service string) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: service,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// NewClient builds the backend client with the configured timeout.
func NewClient(cfg Config) *apisdk.Client {
	client := apisdk.NewClient(cfg.APIURL)
	client.HTTPClient.Timeout = cfg.HTTPTimeout
	return client
}

// New creates the Application and restores any persisted session.
// A backend outage during restore is logged, not fatal: the operator can
// still sign in once the backend is back.
func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg, "allocolis-console"),
		client: NewClient(cfg),
	}

	db, err := OpenStore(ctx, cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	app.session = session.New(app.client, app.db, session.NavigatorFunc(func(to session.Route) {
		app.logger.Info("session navigated", "route", string(to))
	}), app.logger)

	if err := app.session.Init(ctx); err != nil {
		app.logger.Warn("session restore failed", "error", err)
	}

	app.keepAlive = session.NewKeepAlive(app.session, app.logger, cfg.KeepAliveInterval)
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.keepAlive.Start()

	app.logger.Info("console starting",
		"addr", app.server.Addr,
		"api", app.cfg.APIURL,
		"store", app.cfg.StoreDriver,
		"version", BuildVersion,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.keepAlive.Stop()
		_ = app.db.Close()
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

// Shutdown gracefully shuts down the application. The operator stays signed
// in: the refresh token is left in the store for the next start.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down console...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.keepAlive.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("console stopped")
	return nil
}

// OpenStore opens the configured refresh token store and seals it with the
// master key.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (store.Store, error) {
	var (
		db  store.Store
		err error
	)

	switch cfg.StoreDriver {
	case DriverSQLite:
		dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
		var s *sqlite.Store
		if s, err = sqlite.NewStore(dsn); err == nil {
			db = s
		}
	case DriverRedis:
		var s *redis.Store
		if s, err = redis.NewStore(ctx, redis.Config{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: "allocolis:console:",
		}); err == nil {
			db = s
		}
	case DriverMemory:
		db = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s store: %w", cfg.StoreDriver, err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply store migrations: %w", err)
	}

	master, err := masterKey(cfg, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sealer, err := cryptox.NewSealer(master, sealerInfo)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("store ready", "driver", cfg.StoreDriver)
	return store.Sealed(db, sealer), nil
}

// masterKey resolves the key sealing the refresh token: the configured file,
// then the environment. A sqlite store without either keeps a generated key
// next to its database file so the session survives restarts. A redis store
// is shared between hosts and must be given a key explicitly.
func masterKey(cfg Config, logger *slog.Logger) ([]byte, error) {
	master, ephemeral, err := cryptox.LoadMasterKey(cfg.MasterKeyPath, MasterKeyEnv)
	if err != nil || !ephemeral {
		return master, err
	}

	switch cfg.StoreDriver {
	case DriverMemory:
		return master, nil
	case DriverSQLite:
		path := KeyFilePath(cfg)
		key, created, err := cryptox.LoadOrCreateKeyFile(path)
		if err != nil {
			return nil, err
		}
		if created {
			logger.Info("generated master key", "path", path)
		}
		return key, nil
	default:
		return nil, fmt.Errorf("store driver %s needs a master key: set %s or master_key_path",
			cfg.StoreDriver, MasterKeyEnv)
	}
}

// KeyFilePath is where a sqlite store keeps its generated master key.
func KeyFilePath(cfg Config) string {
	return cfg.DatabaseFile + ".key"
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	app.router = httpapi.NewRouter(BuildVersion, app.db, app.client, app.session, app.logger)
	app.router.ApplyRoutes()

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", app.cfg.Host, app.cfg.Port),
		Handler: app.router,
	}
}
