package config

import (
	"os"
	"time"
)

// Frontend assets pulled from CDNs by the page shell.
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"
)

const (
	// ServerRedirectDelay is the time to wait before redirecting the user after a successful action.
	ServerRedirectDelay = 1 * time.Second

	ServerReadTimeout  = 30 * time.Second
	ServerWriteTimeout = 30 * time.Second

	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute

	// Form endpoints get a much stricter per-IP limit than page loads.
	FormRateLimitMax = 5
	FormRateLimitExp = 10 * time.Minute

	// SessionMaxAge bounds both the admin JWT lifetime and its cookie.
	SessionMaxAge = 24 * time.Hour

	// PageCacheTTL bounds how long a rendered public page may be served
	// without re-rendering.
	PageCacheTTL = 10 * time.Minute
)

var (
	ServerPort  = envOr("PORT", "8080")
	DatabaseURL = envOr("DATABASE_URL", "collabverse.db")
	BaseURL     = envOr("BASE_URL", "https://collabverse.app")

	// SiteFile is the optional YAML file overriding the default site
	// configuration (brand, tagline, footer link groups, social links).
	SiteFile = envOr("SITE_CONFIG", "site.yaml")

	JWTSecret = envOr("JWT_SECRET", "dev-only-secret")

	// Admin credentials. Hash and salt come from cmd/hashpw.
	AdminUser         = envOr("ADMIN_USER", "admin")
	AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH")
	AdminPasswordSalt = os.Getenv("ADMIN_PASSWORD_SALT")

	// ContactWebhookURL, when set, receives a JSON notification for every
	// waitlist signup and contact message.
	ContactWebhookURL = os.Getenv("CONTACT_WEBHOOK_URL")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
