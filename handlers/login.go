package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/config"
	"github.com/collabverse/site/cookie"
	"github.com/collabverse/site/jwt"
	"github.com/collabverse/site/local"
	"github.com/collabverse/site/password"
	"github.com/collabverse/site/ui"
)

// HandleLogin serves the login form.
func HandleLogin(c *fiber.Ctx) error {
	if local.IsAdmin(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return render(c, ui.LoginPage(c.Path()))
}

// HandleLoginSubmission verifies admin credentials and issues the session cookie.
func HandleLoginSubmission(c *fiber.Ctx) error {
	name, err := ValidateRequired(c, "name", "Name")
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	pass, err := ValidateRequired(c, "password", "Password")
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}

	if config.AdminPasswordHash == "" || config.AdminPasswordSalt == "" {
		log.Printf("[AUTH] login attempt while admin credentials are not configured")
		return ValidationErrorResponse(c, "Admin login is not configured")
	}

	if name != config.AdminUser || !password.Verify(pass, config.AdminPasswordHash, config.AdminPasswordSalt) {
		log.Printf("[AUTH] failed login for %q from %s", name, c.IP())
		return ValidationErrorResponse(c, "Invalid name or password")
	}

	token, err := jwt.GenerateToken(name)
	if err != nil {
		log.Printf("[AUTH] token generation failed: %v", err)
		return fiber.ErrInternalServerError
	}
	cookie.SetJWT(c, token)
	log.Printf("[AUTH] admin %q logged in from %s", name, c.IP())

	return render(c, ui.SuccessMessage("Login successful", "/admin"))
}

// HandleLogout clears the session cookie and returns to the home page.
func HandleLogout(c *fiber.Ctx) error {
	cookie.ClearJWT(c)
	if c.Get("HX-Request") == "true" {
		c.Set("HX-Redirect", "/")
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
