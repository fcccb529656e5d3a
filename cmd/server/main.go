package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"prsnl_web/internal/config"
	"prsnl_web/internal/handlers"
	"prsnl_web/internal/logging"
	appMiddleware "prsnl_web/internal/middleware"
	"prsnl_web/internal/services"
	"prsnl_web/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if !cfg.DotenvLoaded {
		logger.Info("no .env file found, using system environment")
	}

	// Tool catalog
	catalog, err := tools.LoadCatalog(cfg.ToolsConfigPath)
	if err != nil {
		logger.Fatal("failed to load tool catalog", zap.String("path", cfg.ToolsConfigPath), zap.Error(err))
	}
	resolver := tools.NewResolver(catalog)
	logger.Info("tool catalog loaded", zap.Int("tools", catalog.Len()), zap.Int("aliases", len(catalog.Aliases())))

	// Initialize Database
	var redirects appMiddleware.RedirectFinder
	if cfg.DatabaseURL != "" {
		db, err := services.InitDB(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		redirects = services.NewRedirectStore(db)
	} else {
		logger.Warn("DATABASE_URL not set, stored redirects disabled")
	}

	// Initialize Redis
	var views handlers.ViewCounter
	if cfg.RedisURL != "" {
		cache, err := services.NewRedisCache(cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, view counting disabled", zap.Error(err))
		} else {
			defer cache.Close()
			logger.Info("redis connection established")
			views = services.NewViewCounter(cache)
		}
	} else {
		logger.Warn("REDIS_URL not set, view counting disabled")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appMiddleware.NewErrorHandler(resolver, logger)

	// Middleware
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(appMiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(appMiddleware.LegacyRedirects(redirects, logger))

	// Static file serving
	e.Static("/static", "web/static")

	handlers.RegisterRoutes(e,
		handlers.NewToolHandler(resolver, views, logger),
		handlers.NewSitemapHandler(resolver, cfg.AppURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go watchReload(ctx, cfg.ToolsConfigPath, resolver, logger)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// watchReload rebuilds the tool catalog on SIGHUP. A catalog that fails to
// load leaves the current one in place.
func watchReload(ctx context.Context, path string, resolver *tools.Resolver, logger *zap.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			catalog, err := tools.LoadCatalog(path)
			if err != nil {
				logger.Error("tool catalog reload failed, keeping current catalog", zap.Error(err))
				continue
			}
			if _, err := resolver.Swap(catalog); err != nil {
				logger.Error("tool catalog reload rejected", zap.Error(err))
				continue
			}
			logger.Info("tool catalog reloaded", zap.Int("tools", catalog.Len()))
		}
	}
}
