package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meeting-summarizer/meeting-summarizer/pkg/validator"

	"github.com/meeting-summarizer/meeting-summarizer/internal/adapter/handler"
	"github.com/meeting-summarizer/meeting-summarizer/internal/adapter/repository"
	"github.com/meeting-summarizer/meeting-summarizer/internal/infrastructure/database"
	meetinguse "github.com/meeting-summarizer/meeting-summarizer/internal/usecase/meeting"
	pkgai "github.com/meeting-summarizer/meeting-summarizer/pkg/ai"
	"github.com/meeting-summarizer/meeting-summarizer/pkg/config"
	"github.com/meeting-summarizer/meeting-summarizer/pkg/metrics"
)

// @title           Meeting Summarizer API
// @version         1.0
// @description     Accepts meeting audio uploads, transcribes them and stores a structured summary with action items.

// @host      localhost:8080
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Register prometheus collectors
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	// Initialize Database
	log.Println("Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via the migrate command.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with cmd/migrate.")
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize repository and provider clients
	meetingRepo := repository.NewMeetingRepository(db)
	transcriber := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	generator := pkgai.NewGroqClient(&cfg.Groq)

	// Initialize pipeline service and handlers
	meetingService := meetinguse.NewService(meetingRepo, transcriber, generator, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)

	// Setup router
	router := handler.NewRouter(cfg, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s (%s)", addr, cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
