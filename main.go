package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/collabverse/site/config"
	"github.com/collabverse/site/db"
	h "github.com/collabverse/site/handlers"
	"github.com/collabverse/site/notify"
)

func main() {
	// Load site configuration (brand, tagline, footer links)
	if err := config.Init(config.SiteFile); err != nil {
		log.Fatalf("error loading site configuration: %v", err)
	}

	// Initialize database
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}

	// Initialize rendered-page cache
	if err := h.InitPageCache(); err != nil {
		log.Fatalf("Failed to initialize page cache: %v", err)
	}

	// Initialize webhook notifications
	notify.Init()

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	// Add rate limiter
	app.Use(h.GlobalRateLimiter)

	// Add JWT middleware
	app.Use(h.JWTMiddleware)

	// Add logger middleware
	app.Use(logger.New())

	// Static files
	app.Static("/", "./static")

	// Public pages, served through the page cache
	app.Get("/", h.PageCacheMiddleware, h.HandleHome)
	app.Get("/about", h.PageCacheMiddleware, h.HandleAbout)
	app.Get("/contact", h.PageCacheMiddleware, h.HandleContact)
	app.Get("/terms", h.PageCacheMiddleware, h.HandleTermsOfService)
	app.Get("/privacy", h.PageCacheMiddleware, h.HandlePrivacyPolicy)

	// Admin authentication
	app.Get("/login", h.HandleLogin)
	app.Post("/logout", h.HandleLogout)

	// API group
	api := app.Group("/api")
	api.Post("/waitlist", h.FormRateLimiter, h.HandleWaitlistSignup)
	api.Post("/contact", h.FormRateLimiter, h.HandleContactSubmission)
	api.Post("/login", h.FormRateLimiter, h.HandleLoginSubmission)

	// Admin dashboard
	admin := app.Group("/admin", h.AdminRequired)
	admin.Get("/", h.HandleAdminDashboard)
	admin.Get("/waitlist", h.HandleAdminWaitlist)
	admin.Get("/messages", h.HandleAdminMessages)
	admin.Get("/page-cache", h.HandleAdminPageCache)

	// Admin API group
	adminAPI := api.Group("/admin", h.AdminRequired)
	adminAPI.Get("/waitlist/export", h.HandleAdminExportWaitlist)
	adminAPI.Delete("/waitlist/:id", h.HandleRemoveWaitlistSignup)
	adminAPI.Post("/messages/:id/read", h.HandleMarkMessageRead)
	adminAPI.Post("/page-cache/clear", h.HandleClearPageCache)

	// Sitemap
	app.Get("/sitemap.xml", h.HandleSitemap)

	// Health check
	app.Get("/health", h.HandleHealth)

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	log.Fatal(app.Listen(":" + config.ServerPort))
}
