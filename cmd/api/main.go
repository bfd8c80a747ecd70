// Copyright (c) 2026 Musicopedia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Musicopedia catalog HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and an optional .env).
//  3. Open storage: PostgreSQL with migrations, or process memory.
//  4. Connect to Redis when configured and put the artist cache in front.
//  5. Wire services and HTTP handlers.
//  6. Run the HTTP server and the membership reconciler until a signal arrives.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/sdikyarts/musicopedia/internal/api"
	"github.com/sdikyarts/musicopedia/internal/core/artist"
	"github.com/sdikyarts/musicopedia/internal/core/member"
	"github.com/sdikyarts/musicopedia/internal/core/membership"
	"github.com/sdikyarts/musicopedia/internal/core/subunit"
	"github.com/sdikyarts/musicopedia/internal/platform/config"
	"github.com/sdikyarts/musicopedia/internal/platform/constants"
	"github.com/sdikyarts/musicopedia/internal/platform/metrics"
	"github.com/sdikyarts/musicopedia/internal/platform/migration"
	pgstore "github.com/sdikyarts/musicopedia/internal/platform/postgres"
	redisstore "github.com/sdikyarts/musicopedia/internal/platform/redis"
)

// stores groups the repositories selected by STORAGE_DRIVER.
type stores struct {
	artists        artist.Repository
	members        member.Repository
	subunits       subunit.Repository
	memberships    membership.Repository
	subunitMembers membership.SubunitRepository
}

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	level := slog.LevelInfo
	log := newLogger(level)

	log.Info("[Musicopedia] service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_driver", cfg.StorageDriver),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	var checks []api.Check

	// ── 3. Storage ────────────────────────────────────────────────────────
	var repositories stores
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.PoolSize{Max: cfg.DatabaseMaxConns, Min: cfg.DatabaseMinConns}, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		repositories = postgresStores(pool)
		checks = append(checks, api.Check{Name: "postgres", Ping: func(context context.Context) error {
			return pgstore.Ping(context, pool)
		}})

	case config.DriverMemory:
		log.Warn("memory_storage_enabled", slog.String("note", "data is lost on restart"))
		repositories = memoryStores()
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, cfg.RedisPoolSize, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		repositories.artists = artist.NewCachedRepository(repositories.artists, rdb, cfg.CacheTTL, appMetrics, log)
		checks = append(checks, api.Check{Name: "redis", Ping: func(context context.Context) error {
			return redisstore.Ping(context, rdb)
		}})
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	artistService := artist.NewService(repositories.artists, appMetrics, log)
	memberService := member.NewService(repositories.members, artistService, log)
	subunitService := subunit.NewService(repositories.subunits, artistService, log)
	membershipService := membership.NewService(
		repositories.memberships, repositories.subunitMembers,
		artistService, memberService, subunitService,
		appMetrics, log,
	)
	memberService.SetSyncer(membershipService)
	membership.Cascade(artistService, memberService, subunitService, membershipService)

	liveness, readiness := api.NewHealthHandlers(cfg.StorageDriver, checks, log)

	// ── 6. Run ────────────────────────────────────────────────────────────
	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	server := api.NewServer(runCtx, cfg, log, appMetrics, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Artist:     artist.NewHandler(artistService),
		Member:     member.NewHandler(memberService),
		Subunit:    subunit.NewHandler(subunitService),
		Membership: membership.NewHandler(membershipService),
	})
	reconciler := membership.NewReconciler(membershipService, cfg.ReconcileInterval, appMetrics, log)

	group, groupCtx := errgroup.WithContext(runCtx)

	group.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		return reconciler.Run(groupCtx)
	})

	// Block until a signal arrives or a runner fails, then drain in-flight requests.
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))
		return server.Shutdown(constants.ShutdownTimeout)
	})

	if err := group.Wait(); err != nil {
		log.Error("server_stopped_with_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)
	return log
}

func postgresStores(pool *pgxpool.Pool) stores {
	ledger := membership.NewPostgresRepository(pool)
	return stores{
		artists:        artist.NewPostgresRepository(pool),
		members:        member.NewPostgresRepository(pool),
		subunits:       subunit.NewPostgresRepository(pool),
		memberships:    ledger,
		subunitMembers: ledger.SubunitStore(),
	}
}

func memoryStores() stores {
	return stores{
		artists:        artist.NewMemoryRepository(),
		members:        member.NewMemoryRepository(),
		subunits:       subunit.NewMemoryRepository(),
		memberships:    membership.NewMemoryRepository(),
		subunitMembers: membership.NewMemorySubunitRepository(),
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
