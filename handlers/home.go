package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/cookie"
	"github.com/collabverse/site/ui"
)

// HandleHome serves the landing page. Visitors who already joined the
// waitlist see a confirmation card instead of the signup form.
func HandleHome(c *fiber.Ctx) error {
	return render(c, ui.HomePage(c.Path(), cookie.GetWaitlistJoined(c)))
}
