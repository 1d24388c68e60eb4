package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

// formContext creates a Fiber context carrying a urlencoded form body.
func formContext(app *fiber.App, body string) *fiber.Ctx {
	fctx := &fasthttp.RequestCtx{}
	fctx.Request.Header.SetMethod(fiber.MethodPost)
	fctx.Request.Header.SetContentType(fiber.MIMEApplicationForm)
	fctx.Request.SetBodyString(body)
	return app.AcquireCtx(fctx)
}

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectValue string
		expectError bool
	}{
		{
			name:        "valid required field",
			body:        "title=Test+Title",
			expectValue: "Test Title",
			expectError: false,
		},
		{
			name:        "empty required field",
			body:        "title=",
			expectError: true,
		},
		{
			name:        "missing field",
			body:        "",
			expectError: true,
		},
		{
			name:        "whitespace only field",
			body:        "title=+++",
			expectError: true,
		},
	}

	app := fiber.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := formContext(app, tt.body)
			defer app.ReleaseCtx(ctx)

			value, err := ValidateRequired(ctx, "title", "Title")

			if tt.expectError {
				assert.EqualError(t, err, "Title is required")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectValue, value)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		expectError bool
	}{
		{
			name:        "plain address",
			email:       "ada@example.com",
			expectError: false,
		},
		{
			name:        "subdomain",
			email:       "ada@mail.example.com",
			expectError: false,
		},
		{
			name:        "plus tag",
			email:       "ada+waitlist@example.com",
			expectError: false,
		},
		{
			name:        "missing at sign",
			email:       "ada.example.com",
			expectError: true,
		},
		{
			name:        "missing domain",
			email:       "ada@",
			expectError: true,
		},
		{
			name:        "display name form",
			email:       "Ada <ada@example.com>",
			expectError: true,
		},
		{
			name:        "empty",
			email:       "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMaxLength(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		max         int
		expectError bool
	}{
		{
			name:        "under the limit",
			value:       "short",
			max:         10,
			expectError: false,
		},
		{
			name:        "exactly the limit",
			value:       "1234567890",
			max:         10,
			expectError: false,
		},
		{
			name:        "over the limit",
			value:       "12345678901",
			max:         10,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMaxLength(tt.value, "Subject", tt.max)

			if tt.expectError {
				assert.EqualError(t, err, "Subject must be at most 10 characters")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	app := fiber.New()

	var value int
	var parseErr error
	app.Post("/items/:id", func(c *fiber.Ctx) error {
		value, parseErr = ParseIntParam(c, "id")
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/items/123", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.NoError(t, parseErr)
	assert.Equal(t, 123, value)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/items/abc", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Error(t, parseErr)
}
