package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"poeconv/internal/adapters"
	"poeconv/internal/adapters/cache"
	"poeconv/internal/adapters/postgres"
	"poeconv/internal/adapters/scout"
	"poeconv/internal/api"
	"poeconv/internal/calculator"
	"poeconv/internal/calculator/handler"
	"poeconv/internal/catalog"
	"poeconv/internal/config"
	"poeconv/internal/league"
	"poeconv/internal/metrics"
	"poeconv/internal/platform/db"
	httpserver "poeconv/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, first upstream calls)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	m, metricsHandler, err := metrics.Setup("poeconv")
	if err != nil {
		return err
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	scoutClient := scout.NewClient(
		&http.Client{Timeout: httpTimeout},
		appCfg.Upstream.CatalogURL,
		appCfg.Upstream.LeaguesURL,
		appCfg.Upstream.RelayURL,
		appCfg.Upstream.PerPage,
	)

	catalogCache, closeCache, err := newCatalogCache(startupCtx, appCfg.Cache)
	if err != nil {
		return err
	}
	defer closeCache()

	// Stored exports need Postgres; without it the rest of the API still works.
	var exports adapters.ExportRepository
	if appCfg.DbServer.Enabled() {
		pool, poolErr := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
		if poolErr != nil {
			logrus.WithError(poolErr).Error("Error connecting to db")
			return poolErr
		}
		defer pool.Close()
		logrus.Info("✅ Postgres connection successful")

		if migrateErr := db.Migrate(startupCtx, pool); migrateErr != nil {
			logrus.WithError(migrateErr).Error("Error applying migrations")
			return migrateErr
		}
		logrus.Info("✅ Migrations applied")
		exports = postgres.NewExportRepository(pool)
	} else {
		logrus.Warn("db_server.host is empty, stored exports are disabled")
	}

	// Services
	catalogs := catalog.NewService(scoutClient, catalogCache, appCfg.Upstream.MaxPages, m)
	registry := league.NewRegistry(scoutClient, appCfg.Leagues.CurrentSeason, appCfg.Leagues.FallbackKey)
	session := calculator.NewSession(registry, catalogs, exports, m, calculator.Options{
		ReferenceName: appCfg.Defaults.ReferenceName,
		TargetName:    appCfg.Defaults.TargetName,
	})

	// A failed league load is reported by the API and retried through /session/reload.
	if startErr := session.Start(startupCtx); startErr != nil {
		logrus.WithError(startErr).Error("Initial league load failed")
	} else {
		logrus.Info("✅ Leagues and catalog loaded")
	}

	scheduler := calculator.NewScheduler(session, time.Duration(appCfg.Scheduler.RefreshIntervalSec)*time.Second)
	// Ensure scheduler stops before the cache and DB pool close
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	router := api.NewRouter(appCfg.HTTPServer, handler.NewCalculatorHandler(session), metricsHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// newCatalogCache picks the catalog memo backend. An unreachable Redis degrades to the in-process cache.
func newCatalogCache(ctx context.Context, cfg config.Cache) (adapters.CatalogCache, func(), error) {
	ttl := time.Duration(cfg.TTLSeconds) * time.Second

	if cfg.Backend == "redis" {
		redisCache, err := cache.NewRedisCatalogCache(ctx, cfg.RedisAddr, ttl)
		if err == nil {
			logrus.Info("✅ Redis catalog cache connected")
			return redisCache, func() { _ = redisCache.Close() }, nil
		}
		logrus.WithError(err).Warn("Redis unavailable, using in-process catalog cache")
	}

	memCache, err := cache.NewCatalogCache(cfg.MaxItems, ttl)
	if err != nil {
		return nil, nil, err
	}
	return memCache, memCache.Close, nil
}
