package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "partner-portal-backend/internal/api/http"
	"partner-portal-backend/internal/config"
	"partner-portal-backend/internal/logger"
	"partner-portal-backend/internal/repository/postgres"
	"partner-portal-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrationsDir := flag.String("migrations", "", "If set, apply SQL migrations from this directory before serving")
	flag.Parse()

	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Partner Portal Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	if cfg.Webhook.URL == "" {
		logger.Warn("Webhook URL not configured; submissions will record failed delivery status")
	}

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	if *migrationsDir != "" {
		if err := postgres.Migrate(db, *migrationsDir); err != nil {
			logger.Error("Failed to apply migrations", "error", err)
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	relay := service.NewWebhookRelay(cfg.Webhook.URL, time.Duration(cfg.Webhook.TimeoutSeconds)*time.Second)
	partnerSvc := service.NewPartnerService(store.PartnerRepository)
	requestSvc := service.NewRequestService(store.RequestRepository, store.PartnerRepository, relay)

	// Initialize HTTP handlers and router
	partnerHandler := httpapi.NewPartnerHandler(partnerSvc)
	requestHandler := httpapi.NewRequestHandler(requestSvc, relay)
	router := httpapi.NewRouter(partnerHandler, requestHandler, cfg.Admin.Token)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
