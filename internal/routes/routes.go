package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medsupply/ordering-backend/internal/config"
	"github.com/medsupply/ordering-backend/internal/handlers"
	"github.com/medsupply/ordering-backend/internal/middleware"
	"github.com/medsupply/ordering-backend/internal/models"
	"github.com/medsupply/ordering-backend/internal/store"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Clinic    *handlers.ClinicHandler
	Product   *handlers.ProductHandler
	Order     *handlers.OrderHandler
	Template  *handlers.TemplateHandler
	Settings  *handlers.SettingsHandler
	Inventory *handlers.InventoryHandler
	Health    *handlers.HealthHandler
}

func ipLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}

// authChain builds the request-identity middleware stack. In mock mode every
// request runs as a fixed admin, which keeps local development and handler
// tests free of token plumbing.
func authChain(cfg *config.Config, users store.UserRepo) []fiber.Handler {
	if cfg.AuthMode == config.AuthModeMock {
		return []fiber.Handler{middleware.MockIdentity()}
	}
	return []fiber.Handler{middleware.JWTProtected(cfg), middleware.Identity(users)}
}

func Setup(app *fiber.App, cfg *config.Config, stores *store.Stores, h *Handlers) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(ipLimiter(60))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter 10 req/min limit
	auth := api.Group("/auth")
	auth.Use(ipLimiter(10))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	protected := api.Group("", authChain(cfg, stores.Users)...)

	protected.Post("/auth/logout", h.Auth.Logout)
	protected.Get("/auth/me", h.Auth.Me)

	// User administration
	users := protected.Group("/users", middleware.Authorize(cfg, models.CapManageUsers))
	users.Get("/", h.User.List)
	users.Post("/", h.User.Create)
	users.Get("/:id", h.User.Get)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)

	// Clinic administration
	clinics := protected.Group("/clinics", middleware.Authorize(cfg, models.CapManageClinics))
	clinics.Get("/", h.Clinic.List)
	clinics.Post("/", h.Clinic.Create)
	clinics.Get("/:id", h.Clinic.Get)
	clinics.Put("/:id", h.Clinic.Update)
	clinics.Delete("/:id", h.Clinic.Delete)

	// Catalog: reads for everyone authenticated, writes gated
	products := protected.Group("/products")
	products.Get("/", h.Product.List)
	products.Get("/:id", h.Product.Get)
	products.Post("/", middleware.Authorize(cfg, models.CapManageCatalog), h.Product.Create)
	products.Put("/:id", middleware.Authorize(cfg, models.CapManageCatalog), h.Product.Update)
	products.Delete("/:id", middleware.Authorize(cfg, models.CapManageCatalog), h.Product.Delete)

	// Orders: clinic scoping and approval rules live in the service layer
	orders := protected.Group("/orders")
	orders.Get("/", h.Order.List)
	orders.Post("/", h.Order.Create)
	orders.Get("/:id", h.Order.Get)
	orders.Put("/:id", h.Order.Update)
	orders.Put("/:id/status", h.Order.UpdateStatus)
	orders.Delete("/:id", h.Order.Delete)

	// Order templates
	templates := protected.Group("/templates")
	templates.Get("/", h.Template.List)
	templates.Post("/", h.Template.Create)
	templates.Get("/:id", h.Template.Get)
	templates.Put("/:id", h.Template.Update)
	templates.Post("/:id/apply", h.Template.Apply)
	templates.Delete("/:id", h.Template.Delete)

	// Settings
	settings := protected.Group("/settings", middleware.Authorize(cfg, models.CapManageSettings))
	settings.Get("/", h.Settings.List)
	settings.Post("/", h.Settings.Create)
	settings.Get("/:id", h.Settings.Get)
	settings.Put("/:id", h.Settings.Update)
	settings.Delete("/:id", h.Settings.Delete)

	// Inventory: reads for everyone authenticated, stock writes gated
	inventory := protected.Group("/inventory")
	inventory.Get("/", h.Inventory.List)
	inventory.Put("/:productId", middleware.Authorize(cfg, models.CapManageStock), h.Inventory.SetStock)
}
