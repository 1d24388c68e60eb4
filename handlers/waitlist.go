package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/cookie"
	"github.com/collabverse/site/notify"
	"github.com/collabverse/site/ui"
	"github.com/collabverse/site/waitlist"
)

// HandleWaitlistSignup adds an email to the waitlist and marks the browser
// as joined so the landing page stops showing the form.
func HandleWaitlistSignup(c *fiber.Ctx) error {
	email, err := ValidateRequired(c, "email", "Email")
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	email = waitlist.NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	source := c.FormValue("source")
	if source == "" {
		source = "unknown"
	}

	id, err := waitlist.Add(email, source)
	if errors.Is(err, waitlist.ErrDuplicate) {
		cookie.SetWaitlistJoined(c)
		return render(c, ui.SuccessMessage("You are already on the list. We will be in touch soon.", ""))
	}
	if err != nil {
		log.Printf("[WAITLIST] signup failed: %v", err)
		return fiber.ErrInternalServerError
	}

	cookie.SetWaitlistJoined(c)
	notify.WaitlistSignup(email, source)
	log.Printf("[WAITLIST] new signup id=%d source=%s", id, source)

	return render(c, ui.SuccessMessage("You are on the list! We will email you when your workspace is ready.", ""))
}
