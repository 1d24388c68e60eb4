package handlers

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/ui"
)

// ValidateRequired validates that a required form field is not empty
func ValidateRequired(c *fiber.Ctx, fieldName, displayName string) (string, error) {
	value := strings.TrimSpace(c.FormValue(fieldName))
	if value == "" {
		return "", fmt.Errorf("%s is required", displayName)
	}
	return value, nil
}

// ValidateMaxLength validates that a field does not exceed a character limit
func ValidateMaxLength(value, displayName string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%s must be at most %d characters", displayName, max)
	}
	return nil
}

// ValidateEmail validates that a string is a bare RFC 5322 address
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("Please enter a valid email address")
	}
	return nil
}

// ParseIntParam parses an integer parameter from the URL with consistent error handling
func ParseIntParam(c *fiber.Ctx, paramName string) (int, error) {
	value, err := c.ParamsInt(paramName)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid parameter: "+paramName)
	}
	return value, nil
}

// ValidationErrorResponse returns a validation error response
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return render(c, ui.ValidationError(message))
}
