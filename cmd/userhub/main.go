package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"github.com/userhub-io/userhub/pkg/api"
	"github.com/userhub-io/userhub/pkg/auth"
	"github.com/userhub-io/userhub/pkg/config"
	"github.com/userhub-io/userhub/pkg/observability"
	"github.com/userhub-io/userhub/pkg/users"
	"github.com/userhub-io/userhub/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "userhub: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout)
	logger.WithFields(map[string]interface{}{
		"version":     version.Version,
		"environment": cfg.App.Environment,
	}).Info("starting userhub")

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	store, err := users.NewPostgresStore(db)
	if err != nil {
		db.Close()
		return fmt.Errorf("store initialization failed: %w", err)
	}

	authService := auth.NewService(
		store,
		auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		auth.NewTokenService(cfg.Auth.Secret, cfg.Auth.AccessTokenTTL),
		logger,
	)

	var metrics *observability.Metrics
	if cfg.Observability.MetricsEnabled {
		metrics = observability.NewMetrics(nil)
	}

	server := api.NewServer(cfg, logger, authService, observability.NewHealthChecker(db), metrics)

	httpServer := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := observability.NewShutdownManager(logger, httpServer, cfg.Server.ShutdownTimeout)
	shutdown.RegisterShutdownFunc(func(ctx context.Context) error {
		logger.Info("closing database connection")
		return db.Close()
	})

	errChan := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	shutdownDone := make(chan error, 1)
	go func() {
		shutdownDone <- shutdown.WaitForShutdown()
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("HTTP server failed: %w", err)
	case err := <-shutdownDone:
		if err != nil {
			return err
		}
	}

	logger.Info("shutdown complete")
	return nil
}

// openDatabase opens the connection pool and verifies connectivity
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
