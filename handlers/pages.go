package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/ui"
)

func HandleAbout(c *fiber.Ctx) error {
	return render(c, ui.AboutPage(c.Path()))
}

func HandleContact(c *fiber.Ctx) error {
	return render(c, ui.ContactPage(c.Path()))
}

func HandleTermsOfService(c *fiber.Ctx) error {
	return render(c, ui.TermsOfServicePage(c.Path()))
}

func HandlePrivacyPolicy(c *fiber.Ctx) error {
	return render(c, ui.PrivacyPolicyPage(c.Path()))
}
