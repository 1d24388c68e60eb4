package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/collabverse/site/config"
)

// GlobalRateLimiter is the global rate limiter middleware
var GlobalRateLimiter = limiter.New(limiter.Config{
	Max:        config.ServerRateLimitMax,
	Expiration: config.ServerRateLimitExp,
})

// FormRateLimiter is a strict rate limiter for form submissions (per IP)
var FormRateLimiter = limiter.New(limiter.Config{
	Max:        config.FormRateLimitMax,
	Expiration: config.FormRateLimitExp,
	KeyGenerator: func(c *fiber.Ctx) string {
		// Rate limit per IP address
		return c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(429).
			SendString("Too many submissions. " +
				"Please try again later.")
	},
})
