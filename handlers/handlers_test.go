package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collabverse/site/config"
	"github.com/collabverse/site/db"
	"github.com/collabverse/site/jwt"
	"github.com/collabverse/site/password"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: CustomErrorHandler})
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return doRequest(t, app, req)
}

func TestPageCacheKey(t *testing.T) {
	assert.Equal(t, "/|2025|joined=false", pageCacheKey("/", 2025, false))
	assert.Equal(t, "/about|2025|joined=true", pageCacheKey("/about", 2025, true))
	assert.NotEqual(t, pageCacheKey("/", 2025, false), pageCacheKey("/", 2026, false))
}

func TestMinifyPage(t *testing.T) {
	in := []byte("<html>\n  <body>\n    <p>hi</p>\n  </body>\n</html>\n")
	out, err := minifyPage(in)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), len(in))
	assert.Contains(t, string(out), "<p>hi")
}

func TestPageCacheMiddleware(t *testing.T) {
	require.NoError(t, InitPageCache())
	t.Cleanup(func() { pageCache = nil })

	renders := 0
	app := newTestApp()
	app.Get("/cached", PageCacheMiddleware, func(c *fiber.Ctx) error {
		renders++
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
		return c.SendString("<html><body>  <p>cached page</p>  </body></html>")
	})

	_, body := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/cached", nil))
	assert.Contains(t, body, "cached page")
	assert.Equal(t, 1, renders)

	pageCache.Wait()

	_, body = doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/cached", nil))
	assert.Contains(t, body, "cached page")
	assert.Equal(t, 1, renders)

	ClearPageCache()
	pageCache.Wait()

	_, _ = doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/cached", nil))
	assert.Equal(t, 2, renders)
}

func TestCustomErrorHandler(t *testing.T) {
	app := newTestApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "no such page")
	})

	resp, body := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Error 404")
	assert.Contains(t, body, "no such page")
}

func TestHandleHome(t *testing.T) {
	app := newTestApp()
	app.Get("/", HandleHome)

	resp, body := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="waitlist"`)
	assert.Contains(t, body, fmt.Sprintf("© %d CollabVerse. All rights reserved.", time.Now().Year()))
}

func TestHandleHealth(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	app := newTestApp()
	app.Get("/health", HandleHealth)

	resp, body := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/health", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)
	assert.Contains(t, body, `"database":"up"`)
}

func TestHandleSitemap(t *testing.T) {
	app := newTestApp()
	app.Get("/sitemap.xml", HandleSitemap)

	resp, body := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/sitemap.xml", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, config.BaseURL+"/about")
	assert.Contains(t, body, config.BaseURL+"/privacy")
}

func TestLoginFlow(t *testing.T) {
	hash, salt, err := password.Hash("correct horse battery staple")
	require.NoError(t, err)

	prevUser, prevHash, prevSalt := config.AdminUser, config.AdminPasswordHash, config.AdminPasswordSalt
	config.AdminUser = "admin"
	config.AdminPasswordHash = hash
	config.AdminPasswordSalt = salt
	t.Cleanup(func() {
		config.AdminUser, config.AdminPasswordHash, config.AdminPasswordSalt = prevUser, prevHash, prevSalt
	})

	app := newTestApp()
	app.Post("/api/login", HandleLoginSubmission)

	resp, body := postForm(t, app, "/api/login", url.Values{
		"name":     {"admin"},
		"password": {"correct horse battery staple"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Login successful")

	var authCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" {
			authCookie = c
		}
	}
	require.NotNil(t, authCookie)
	assert.NotEmpty(t, authCookie.Value)

	name, err := jwt.ValidateToken(authCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", name)

	_, body = postForm(t, app, "/api/login", url.Values{
		"name":     {"admin"},
		"password": {"wrong"},
	})
	assert.Contains(t, body, "Invalid name or password")
}

func TestAdminRequired(t *testing.T) {
	app := newTestApp()
	app.Use(JWTMiddleware)
	app.Get("/admin", AdminRequired, func(c *fiber.Ctx) error {
		return c.SendString("admin ok")
	})

	resp, _ := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/admin", nil))
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set("HX-Request", "true")
	resp, _ = doRequest(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("HX-Redirect"))

	token, err := jwt.GenerateToken(config.AdminUser)
	require.NoError(t, err)
	req = httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	resp, body := doRequest(t, app, req)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin ok", body)
}

func TestHandleWaitlistSignup(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	mock.ExpectExec("INSERT INTO WaitlistSignup").
		WithArgs("ada@example.com", "home").
		WillReturnResult(sqlmock.NewResult(7, 1))

	app := newTestApp()
	app.Post("/api/waitlist", HandleWaitlistSignup)

	resp, body := postForm(t, app, "/api/waitlist", url.Values{
		"email":  {"Ada@Example.com"},
		"source": {"home"},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "You are on the list!")
	assert.NoError(t, mock.ExpectationsWereMet())

	joined := false
	for _, c := range resp.Cookies() {
		if c.Name == "waitlist_joined" && c.Value == "1" {
			joined = true
		}
	}
	assert.True(t, joined)
}

func TestHandleWaitlistSignupRejectsBadEmail(t *testing.T) {
	app := newTestApp()
	app.Post("/api/waitlist", HandleWaitlistSignup)

	_, body := postForm(t, app, "/api/waitlist", url.Values{"email": {"not-an-email"}})
	assert.Contains(t, body, "valid email address")
}

func TestHandleContactSubmission(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	mock.ExpectExec("INSERT INTO ContactMessage").
		WithArgs("Ada", "ada@example.com", "Hello", "Looking forward to the launch.").
		WillReturnResult(sqlmock.NewResult(3, 1))

	app := newTestApp()
	app.Post("/api/contact", HandleContactSubmission)

	resp, body := postForm(t, app, "/api/contact", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Looking forward to the launch."},
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Your message is on its way")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleAdminWaitlist(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	rows := sqlmock.NewRows([]string{"id", "email", "source", "created_at"}).
		AddRow(2, "grace@example.com", "home", time.Now()).
		AddRow(1, "ada@example.com", "footer", time.Now())
	mock.ExpectQuery("SELECT id, email, source, created_at").WillReturnRows(rows)

	app := newTestApp()
	app.Get("/admin/waitlist", HandleAdminWaitlist)

	// direct navigation renders the whole page
	_, body := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/admin/waitlist", nil))
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "grace@example.com")
	assert.Contains(t, body, "ada@example.com")

	rows = sqlmock.NewRows([]string{"id", "email", "source", "created_at"}).
		AddRow(1, "ada@example.com", "footer", time.Now())
	mock.ExpectQuery("SELECT id, email, source, created_at").WillReturnRows(rows)

	// htmx tab switches get just the section
	req := httptest.NewRequest(fiber.MethodGet, "/admin/waitlist", nil)
	req.Header.Set("HX-Request", "true")
	_, body = doRequest(t, app, req)
	assert.False(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, `id="admin-section"`)
	assert.Contains(t, body, "ada@example.com")
}

func TestHandleAdminExportWaitlist(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db.SetForTesting(mockDB)

	rows := sqlmock.NewRows([]string{"id", "email", "source", "created_at"}).
		AddRow(1, "ada@example.com", "footer", time.Now())
	mock.ExpectQuery("SELECT id, email, source, created_at").WillReturnRows(rows)

	app := newTestApp()
	app.Get("/api/admin/waitlist/export", HandleAdminExportWaitlist)

	resp, body := doRequest(t, app, httptest.NewRequest(fiber.MethodGet, "/api/admin/waitlist/export", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attachment")
	assert.Contains(t, body, `"email":"ada@example.com"`)
}
