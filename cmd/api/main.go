package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/mergington-high/activities-api/internal/config"
	"github.com/mergington-high/activities-api/internal/database"
	"github.com/mergington-high/activities-api/internal/handler"
	"github.com/mergington-high/activities-api/internal/middleware"
	"github.com/mergington-high/activities-api/internal/models"
	"github.com/mergington-high/activities-api/internal/repository"
	"github.com/mergington-high/activities-api/internal/router"
	"github.com/mergington-high/activities-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Activity{}, &models.Participant{}, &models.AuditLog{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	activityRepo := repository.NewActivityRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	auditService := service.NewAuditService(auditRepo, cfg.RetentionDays, logger)
	rosterService := service.NewRosterService(activityRepo, participantRepo, auditService, validate, cfg.RequireRole, logger)
	authService := service.NewAuthService(cfg.RoleTokens, logger)
	seedService := service.NewSeedService(activityRepo, logger)

	if err := seedService.Seed(context.Background()); err != nil {
		log.Fatalf("failed to seed activities: %v", err)
	}

	activityHandler := handler.NewActivityHandler(rosterService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	auditHandler := handler.NewAuditHandler(auditService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ActivityHandler: activityHandler,
		AuthHandler:     authHandler,
		AuditHandler:    auditHandler,
		RoleMiddleware:  middleware.ResolveRole(authService),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
