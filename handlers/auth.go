package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/config"
	"github.com/collabverse/site/cookie"
	"github.com/collabverse/site/jwt"
	"github.com/collabverse/site/local"
)

// JWTMiddleware resolves the auth cookie into the admin name for the request.
// Invalid or stale tokens are cleared so the browser stops sending them.
func JWTMiddleware(c *fiber.Ctx) error {
	token := cookie.GetJWT(c)
	if token == "" {
		return c.Next()
	}
	name, err := jwt.ValidateToken(token)
	if err != nil {
		log.Printf("[AUTH] invalid session token: %v", err)
		cookie.ClearJWT(c)
		return c.Next()
	}
	if name != config.AdminUser {
		log.Printf("[AUTH] session for unknown admin %q", name)
		cookie.ClearJWT(c)
		return c.Next()
	}
	local.SetAdminName(c, name)
	return c.Next()
}

// AdminRequired blocks requests that do not carry a valid admin session.
func AdminRequired(c *fiber.Ctx) error {
	if !local.IsAdmin(c) {
		return redirectToLogin(c)
	}
	return c.Next()
}

func redirectToLogin(c *fiber.Ctx) error {
	if c.Get("HX-Request") == "true" {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
