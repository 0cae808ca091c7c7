package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "clubsync-backend/internal/api/http"
	"clubsync-backend/internal/config"
	"clubsync-backend/internal/logger"
	"clubsync-backend/internal/repository/postgres"
	"clubsync-backend/internal/security"
	"clubsync-backend/internal/service"
	"clubsync-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// A .env file is optional; environment wins over YAML either way.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ClubSync Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
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

	// Apply schema migrations
	if err := postgres.ApplyMigrations(db); err != nil {
		logger.Error("Failed to apply migrations", "error", err)
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	logger.Info("Database schema up to date")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.Session.Secret, cfg.Session.TokenTTL())

	// Initialize Logo Storage
	logger.Info("Using local logo storage", "upload_dir", cfg.Storage.UploadDir)
	logoStore, err := storage.NewLocalLogoStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize logo storage", "error", err)
		log.Fatalf("Failed to initialize logo storage: %v", err)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.StudentRepository, store.ClubRepository, store.AdminRepository, tokenManager)
	studentSvc := service.NewStudentService(store.StudentRepository, store.ClubRepository, store.RecruitmentRepository)
	clubSvc := service.NewClubService(store.ClubRepository, store.StudentRepository, store.RecruitmentRepository, store.EventRepository)
	recruitmentSvc := service.NewRecruitmentService(store.RecruitmentRepository, store.ClubRepository, store.StudentRepository, emailSvc)
	eventSvc := service.NewEventService(store.EventRepository, store.StudentRepository)
	budgetSvc := service.NewBudgetService(store.BudgetRepository, store.EventRepository)
	adminSvc := service.NewAdminService(store.EventRepository, store.BudgetRepository, store.ClubRepository, store.StudentRepository)

	// Build the router
	router := httpapi.NewRouter(cfg, httpapi.Services{
		Auth:         authSvc,
		Students:     studentSvc,
		Clubs:        clubSvc,
		Recruitments: recruitmentSvc,
		Events:       eventSvc,
		Budgets:      budgetSvc,
		Admins:       adminSvc,
	}, tokenManager, logoStore)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve until interrupted, then drain in-flight requests.
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
