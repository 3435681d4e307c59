package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/thewiseshop/pawtrait-backend/internal/catalog"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/database"
	"github.com/thewiseshop/pawtrait-backend/internal/genimage"
	"github.com/thewiseshop/pawtrait-backend/internal/handlers"
	"github.com/thewiseshop/pawtrait-backend/internal/logging"
	"github.com/thewiseshop/pawtrait-backend/internal/mailer"
	"github.com/thewiseshop/pawtrait-backend/internal/middleware"
	"github.com/thewiseshop/pawtrait-backend/internal/routes"
	"github.com/thewiseshop/pawtrait-backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	// Style and package catalog
	reg := catalog.NewRegistry()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFromFile(cfg.CatalogPath)
		if err != nil {
			slog.Error("failed to load catalog file", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		reg = loaded
	}
	slog.Info("catalog loaded", "styles", len(reg.Styles()), "packages", len(reg.Packages()))

	// Without store credentials the server still boots: health, catalog and
	// client config keep answering while everything stateful reports 503.
	storeReady := cfg.StoreConfigured()
	cleanupDone := make(chan struct{})
	var pgLogHandler *logging.PGHandler

	if storeReady {
		if err := database.Connect(cfg); err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}

		// PostgreSQL log handler (ERROR+ async batch)
		pgLogHandler = logging.NewPGHandler(database.DB)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			pgLogHandler,
		)))

		// Log cleanup (30-day retention)
		logging.StartCleanup(database.DB, cleanupDone)
	} else {
		slog.Warn("DB_PASSWORD not set, starting without a store")
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app; generous body limit for base64 image payloads
	app := fiber.New(fiber.Config{
		BodyLimit:    25 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	generator := genimage.NewClient(cfg.GenAIAPIURL, cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAITimeout)
	mail := mailer.New(cfg)

	var h routes.Handlers
	h.Health = handlers.NewHealthHandler(storeReady)

	if storeReady {
		profileService := services.NewProfileService(database.DB, cfg)
		authService := services.NewAuthService(database.DB, cfg, mail)
		paymentService := services.NewPaymentService(database.DB, reg, mail)
		reviewService := services.NewReviewService(database.DB)
		studioService := services.NewStudioService(database.DB, reg, profileService, generator)
		notificationService := services.NewNotificationService(database.DB)
		orderService := services.NewOrderService(database.DB, cfg, reg)

		h.Auth = handlers.NewAuthHandler(authService)
		h.Profile = handlers.NewProfileHandler(profileService)
		h.Payment = handlers.NewPaymentHandler(paymentService, profileService)
		h.Review = handlers.NewReviewHandler(reviewService)
		h.Studio = handlers.NewStudioHandler(studioService, reg, cfg)
		h.Notification = handlers.NewNotificationHandler(notificationService)
		h.Order = handlers.NewOrderHandler(orderService)

		routes.Setup(app, cfg, database.DB, h)
	} else {
		h.Studio = handlers.NewStudioHandler(nil, reg, cfg)
		routes.Setup(app, cfg, nil, h)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "store", storeReady)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	if pgLogHandler != nil {
		pgLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if storeReady {
		if sqlDB, err := database.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
