package local

import "github.com/gofiber/fiber/v2"

func GetAdminName(c *fiber.Ctx) string {
	name, _ := c.Locals("adminName").(string)
	return name
}

func SetAdminName(c *fiber.Ctx, name string) {
	c.Locals("adminName", name)
}

// IsAdmin reports whether this request carries a signed-in admin session.
func IsAdmin(c *fiber.Ctx) bool {
	return GetAdminName(c) != ""
}
