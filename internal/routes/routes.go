package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/thewiseshop/pawtrait-backend/internal/config"
	"github.com/thewiseshop/pawtrait-backend/internal/dto"
	"github.com/thewiseshop/pawtrait-backend/internal/handlers"
	"github.com/thewiseshop/pawtrait-backend/internal/middleware"
	"gorm.io/gorm"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Profile      *handlers.ProfileHandler
	Payment      *handlers.PaymentHandler
	Review       *handlers.ReviewHandler
	Studio       *handlers.StudioHandler
	Notification *handlers.NotificationHandler
	Order        *handlers.OrderHandler
}

func Setup(app *fiber.App, cfg *config.Config, db *gorm.DB, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and public storefront data never require a store
	api.Get("/health", h.Health.Check)
	api.Get("/catalog", h.Studio.Catalog)
	api.Get("/config", h.Studio.ClientConfig)

	if db == nil {
		// Degraded mode: the server answers health and catalog, everything
		// touching the store reports unavailable.
		api.Use(func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Error: true, Message: "Store is not configured",
			})
		})
		return
	}

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/recover", h.Auth.Recover)

	// Protected routes (JWT required) - apply middleware per route so public
	// routes stay public
	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)
	api.Get("/auth/session", middleware.JWTProtected(cfg), h.Auth.Session)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), h.Auth.DeleteAccount)

	api.Get("/profile", middleware.JWTProtected(cfg), h.Profile.Me)
	api.Put("/profile", middleware.JWTProtected(cfg), h.Profile.Update)

	// Reviews are public to read; create and delete work for both
	// authenticated and anonymous callers
	api.Get("/reviews", h.Review.List)
	api.Post("/reviews", middleware.JWTOptional(cfg), h.Review.Create)
	api.Delete("/reviews/:id", middleware.JWTOptional(cfg), h.Review.Delete)

	// Generation costs credits, so it requires a user
	generate := api.Group("/studio", middleware.JWTProtected(cfg))
	generate.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	generate.Post("/generate", h.Studio.Generate)

	// Bank-transfer top-up requests
	api.Post("/payments/requests", middleware.JWTProtected(cfg), h.Payment.Create)
	api.Get("/payments/requests", middleware.JWTProtected(cfg), h.Payment.ListMine)

	// Hosted payment-widget orders
	api.Post("/orders", middleware.JWTProtected(cfg), h.Order.Create)
	api.Post("/orders/confirm", middleware.JWTProtected(cfg), h.Order.Confirm)
	api.Get("/orders", middleware.JWTProtected(cfg), h.Order.ListMine)

	api.Get("/notifications", middleware.JWTProtected(cfg), h.Notification.List)
	api.Put("/notifications/read-all", middleware.JWTProtected(cfg), h.Notification.MarkAllRead)
	api.Put("/notifications/:id/read", middleware.JWTProtected(cfg), h.Notification.MarkRead)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/payments/requests", h.Payment.ListAll)
	admin.Put("/payments/requests/:id/approve", h.Payment.Approve)
	admin.Put("/payments/requests/:id/reject", h.Payment.Reject)

	// Destructive maintenance, reachable only with the admin token header
	api.Delete("/admin/payments/requests", middleware.AdminRequired(db, cfg), h.Payment.Wipe)
	api.Delete("/admin/reviews", middleware.AdminRequired(db, cfg), h.Review.Wipe)
}
