package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cadencehq/cadence-server/internal/catalog"
	"github.com/cadencehq/cadence-server/internal/config"
	"github.com/cadencehq/cadence-server/internal/database"
	"github.com/cadencehq/cadence-server/internal/database/postgres"
	"github.com/cadencehq/cadence-server/internal/engine"
	"github.com/cadencehq/cadence-server/internal/linking"
	"github.com/cadencehq/cadence-server/internal/repository"
	"github.com/cadencehq/cadence-server/internal/scheduler"
	"github.com/cadencehq/cadence-server/internal/server"
	"github.com/cadencehq/cadence-server/internal/worker"
)

const (
	dbMaxConns    = 10
	dbMaxIdleTime = 5 * time.Minute
	dbMaxLifetime = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	cat, err := loadCatalog(cfg)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	store, pool, err := buildStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	if pool != nil {
		defer pool.Close()
	}

	token, err := authenticate(cfg)
	if err != nil {
		slog.Error("Failed to authenticate player token", "error", err)
		os.Exit(1)
	}

	eng := engine.New(cat, store, engine.Options{
		SettleOnClear: cfg.SettleOnClear,
		ExternalToken: token,
	})

	// Background simulation: a fast tick pass and a slow weekly pass.
	workers := worker.NewPool(2, 16)
	workers.Start()
	defer workers.Stop()

	sched := scheduler.New(workers)
	sched.Schedule(cfg.TickInterval, worker.NewTickJob(eng))
	sched.Schedule(cfg.WeeklyInterval, worker.NewWeeklyJob(eng))
	defer sched.Stop()

	srv := newServer(cfg, pool, eng, cat)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
	slog.Info("Server stopped")
}

// loadCatalog reads the world catalog from disk, or falls back to the
// built-in seed data.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogDir == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogDir)
}

// buildStore wires the snapshot store: postgres behind an LRU cache when a
// database is configured, the in-memory store otherwise.
func buildStore(cfg *config.Config) (repository.StateStore, *pgxpool.Pool, error) {
	if !cfg.UseDB {
		slog.Info("Using in-memory state store")
		return repository.NewMemoryStore(), nil, nil
	}

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConns, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.InitSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}

	inner := postgres.NewStateRepository(pool)
	return repository.NewCachedStore(inner, cfg.CacheSize, cfg.CacheTTL), pool, nil
}

// authenticate resolves the external player token: the configured
// pre-shared token when set, otherwise a freshly minted anonymous one.
func authenticate(cfg *config.Config) (string, error) {
	var auth linking.Authenticator

	if cfg.PlayerToken != "" {
		static, err := linking.NewStaticAuthenticator(cfg.PlayerToken)
		if err != nil {
			return "", err
		}
		auth = static
	} else {
		anon, err := linking.NewAnonymousAuthenticator()
		if err != nil {
			return "", err
		}
		auth = anon
	}

	return auth.Authenticate(context.Background())
}

// newServer keeps the nil-pool case from smuggling a typed nil into the
// Pinger interface.
func newServer(cfg *config.Config, pool *pgxpool.Pool, eng *engine.Engine, cat *catalog.Catalog) *server.Server {
	if pool == nil {
		return server.NewServer(cfg.Port, cfg.APIKey, nil, nil, eng, cat)
	}
	return server.NewServer(cfg.Port, cfg.APIKey, nil, pool, eng, cat)
}
