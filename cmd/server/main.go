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

	"github.com/medsupply/ordering-backend/internal/config"
	"github.com/medsupply/ordering-backend/internal/database"
	"github.com/medsupply/ordering-backend/internal/handlers"
	"github.com/medsupply/ordering-backend/internal/logging"
	"github.com/medsupply/ordering-backend/internal/middleware"
	"github.com/medsupply/ordering-backend/internal/routes"
	"github.com/medsupply/ordering-backend/internal/services"
	"github.com/medsupply/ordering-backend/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.AuthMode == config.AuthModeJWT && cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required in jwt auth mode")
		os.Exit(1)
	}

	// Storage: in-memory for local development and tests, Postgres otherwise
	var (
		stores       *store.Stores
		pgLogHandler *logging.PGHandler
		cleanupDone  chan struct{}
	)
	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		stores = store.NewMemory()
		slog.Info("using in-memory storage")
	case config.StorageBackendPostgres:
		if err := database.Connect(cfg); err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		if err := database.Migrate(); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		stores = store.NewGorm(database.DB)

		// PostgreSQL log handler (ERROR+ async batch)
		pgLogHandler = logging.NewPGHandler(database.DB)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			pgLogHandler,
		)))

		// Log cleanup (30-day retention)
		cleanupDone = make(chan struct{})
		logging.StartCleanup(database.DB, cleanupDone)
	default:
		slog.Error("unknown storage backend", "backend", cfg.StorageBackend)
		os.Exit(1)
	}

	// Services
	authService := services.NewAuthService(stores.Users, stores.RefreshTokens, cfg)
	userService := services.NewUserService(stores.Users, stores.Clinics)
	clinicService := services.NewClinicService(stores.Clinics)
	productService := services.NewProductService(stores.Products)
	orderService := services.NewOrderService(stores.Orders, stores.Products, stores.Clinics)
	templateService := services.NewTemplateService(stores.Templates, stores.Products, stores.Orders, stores.Clinics)
	settingsService := services.NewSettingsService(stores.Settings, stores.Clinics)
	inventoryService := services.NewInventoryService(stores.Products, stores.Stock)

	h := &routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		User:      handlers.NewUserHandler(userService),
		Clinic:    handlers.NewClinicHandler(clinicService),
		Product:   handlers.NewProductHandler(productService),
		Order:     handlers.NewOrderHandler(orderService),
		Template:  handlers.NewTemplateHandler(templateService),
		Settings:  handlers.NewSettingsHandler(settingsService),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		Health:    handlers.NewHealthHandler(cfg),
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

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
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
	app.Use(middleware.Metrics())

	// Routes
	routes.Setup(app, cfg, stores, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "storage", cfg.StorageBackend, "auth", cfg.AuthMode)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if cleanupDone != nil {
		close(cleanupDone)
	}
	if pgLogHandler != nil {
		pgLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if cfg.StorageBackend == config.StorageBackendPostgres {
		if sqlDB, err := database.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
		}
	}

	slog.Info("server stopped")
}
