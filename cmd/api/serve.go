package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pet-clinic-types/internal/adapters/auth/statictoken"
	"pet-clinic-types/internal/adapters/storage/postgres"
	"pet-clinic-types/internal/adapters/storage/sqlite"
	"pet-clinic-types/internal/config"
	"pet-clinic-types/internal/platform/logger"
	"pet-clinic-types/internal/ports/auth"
	"pet-clinic-types/internal/router"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

func serve(ctx context.Context, configFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	db, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	log.Info("storage ready", map[string]any{"driver": string(cfg.Storage.Driver)})

	verifier, err := buildVerifier(cfg.Auth)
	if err != nil {
		return err
	}
	if verifier == nil {
		log.Warn("no auth tokens configured, dev header auth enabled", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.NewRouter(router.Options{AuthVerifier: verifier, DB: db, Logger: log}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server error")
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", map[string]any{"error": err})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}

// openStorage devuelve nil para el driver memory.
func openStorage(ctx context.Context, c config.StorageConf) (*sqlx.DB, error) {
	switch c.Driver {
	case config.DriverPostgres:
		return postgres.Open(ctx, c.DSN)
	case config.DriverSQLite:
		return sqlite.Open(ctx, c.DSN)
	default:
		return nil, nil
	}
}

func buildVerifier(c config.AuthConf) (auth.AuthVerifier, error) {
	if len(c.Tokens) == 0 {
		return nil, nil
	}
	entries := make([]statictoken.Entry, 0, len(c.Tokens))
	for _, t := range c.Tokens {
		entries = append(entries, statictoken.Entry{Token: t.Token, UserID: t.UserID, Roles: t.Roles})
	}
	return statictoken.NewVerifier(entries)
}
