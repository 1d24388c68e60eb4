package cookie

import (
	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/config"
)

// GetWaitlistJoined reports whether this browser already joined the waitlist,
// so the home page can swap the signup form for a confirmation.
func GetWaitlistJoined(c *fiber.Ctx) bool {
	return c.Cookies("waitlist_joined") == "1"
}

func SetWaitlistJoined(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "waitlist_joined",
		Value:    "1",
		MaxAge:   365 * 24 * 60 * 60, // 1 year
		HTTPOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: "Strict",
	})
}

func SetJWT(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "auth_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		MaxAge:   int(config.SessionMaxAge.Seconds()),
	})
}

func ClearJWT(c *fiber.Ctx) {
	c.ClearCookie("auth_token")
}

func GetJWT(c *fiber.Ctx) string {
	return c.Cookies("auth_token")
}
