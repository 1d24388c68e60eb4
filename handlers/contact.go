package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/contact"
	"github.com/collabverse/site/notify"
	"github.com/collabverse/site/ui"
)

// HandleContactSubmission stores a contact message and notifies the team.
func HandleContactSubmission(c *fiber.Ctx) error {
	name, err := ValidateRequired(c, "name", "Name")
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	email, err := ValidateRequired(c, "email", "Email")
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	if err := ValidateEmail(email); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	subject, err := ValidateRequired(c, "subject", "Subject")
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	if err := ValidateMaxLength(subject, "Subject", 200); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	body, err := ValidateRequired(c, "message", "Message")
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}
	if err := ValidateMaxLength(body, "Message", 5000); err != nil {
		return ValidationErrorResponse(c, err.Error())
	}

	id, err := contact.Add(name, email, subject, body)
	if err != nil {
		log.Printf("[CONTACT] saving message failed: %v", err)
		return fiber.ErrInternalServerError
	}

	notify.ContactMessage(name, email, subject)
	log.Printf("[CONTACT] new message id=%d from %s", id, email)

	return render(c, ui.SuccessMessage("Thanks! Your message is on its way.", ""))
}
