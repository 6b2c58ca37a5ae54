package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suratlocal/internal/config"
	"suratlocal/internal/db"
	"suratlocal/internal/email"
	"suratlocal/internal/handlers"
	"suratlocal/internal/jobs"
	"suratlocal/internal/metrics"
	"suratlocal/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Seed areas and categories from the optional YAML config
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load YAML config: %v", err)
	}
	if yamlCfg != nil {
		if err := database.SeedFromConfig(ctx, yamlCfg); err != nil {
			log.Fatalf("Failed to seed reference data: %v", err)
		}
		log.Printf("Seeded %d areas and %d categories from config", len(yamlCfg.Areas), len(yamlCfg.Categories))
	}

	// Metrics and email
	metrics.Init(database)
	handlers.SetNotifier(email.NewNotifier(cfg, database))

	// Background website checker
	if cfg.WebsiteCheckEnabled {
		interval, err := time.ParseDuration(cfg.WebsiteCheckInterval)
		if err != nil {
			log.Fatalf("Invalid WEBSITE_CHECK_INTERVAL: %v", err)
		}
		checker := jobs.NewWebsiteChecker(database, interval, 24*time.Hour)
		go checker.Start(ctx)
	}

	// HTTP server
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
