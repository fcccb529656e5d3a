package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"prsnl_web/internal/config"
	"prsnl_web/internal/logging"
	"prsnl_web/internal/services"
	"prsnl_web/internal/tools"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Log the redirects that would be written without touching the database")
	deactivate := flag.String("deactivate", "", "Stop serving the stored redirect for this path instead of seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := tools.LoadCatalog(cfg.ToolsConfigPath)
	if err != nil {
		logger.Fatal("failed to load tool catalog", zap.Error(err))
	}
	redirects := services.StaticRedirects(catalog)

	if *dryRun {
		for _, r := range redirects {
			logger.Info("dry run: would create redirect", zap.String("from", r.OldPath), zap.String("to", r.NewPath))
		}
		logger.Info("dry run complete", zap.Int("redirects", len(redirects)))
		return
	}

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	db, err := services.InitDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := services.AutoMigrate(db, logger); err != nil {
		logger.Fatal("failed to run database migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store := services.NewRedirectStore(db)
	if *deactivate != "" {
		if err := store.Deactivate(ctx, *deactivate); err != nil {
			logger.Fatal("failed to deactivate redirect", zap.String("path", *deactivate), zap.Error(err))
		}
		logger.Info("redirect deactivated", zap.String("path", *deactivate))
		return
	}

	created := 0
	for i := range redirects {
		if err := store.Upsert(ctx, &redirects[i]); err != nil {
			logger.Error("failed to write redirect", zap.String("from", redirects[i].OldPath), zap.Error(err))
			continue
		}
		created++
	}
	logger.Info("redirects seeded", zap.Int("written", created), zap.Int("total", len(redirects)))
}
