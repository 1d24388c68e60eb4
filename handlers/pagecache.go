package handlers

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/collabverse/site/cache"
	"github.com/collabverse/site/config"
	"github.com/collabverse/site/cookie"
)

var pageCache *cache.Cache[[]byte]

var minifier = func() (m *minify.M) {
	m = minify.New()
	m.AddFunc("text/html", html.Minify)
	return
}()

// InitPageCache creates the rendered-page cache. Must be called before the
// middleware is mounted.
func InitPageCache() error {
	c, err := cache.New[[]byte](func(b []byte) int64 { return int64(len(b)) }, "pages")
	if err != nil {
		return fmt.Errorf("creating page cache: %w", err)
	}
	pageCache = c
	return nil
}

// pageCacheKey builds the cache key for a rendered page. The year is part of
// the key so the footer copyright is never served stale across a year
// rollover, and the joined flag separates the two variants of the home page.
func pageCacheKey(path string, year int, joined bool) string {
	return fmt.Sprintf("%s|%d|joined=%t", path, year, joined)
}

// PageCacheMiddleware serves GET responses from the cache and stores fresh
// renders, minified, on the way out.
func PageCacheMiddleware(c *fiber.Ctx) error {
	if pageCache == nil || c.Method() != fiber.MethodGet {
		return c.Next()
	}

	key := pageCacheKey(c.Path(), time.Now().Year(), cookie.GetWaitlistJoined(c))
	if body, ok := pageCache.Get(key); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
		return c.Send(body)
	}

	if err := c.Next(); err != nil {
		return err
	}
	if c.Response().StatusCode() != fiber.StatusOK {
		return nil
	}

	body, err := minifyPage(c.Response().Body())
	if err != nil {
		log.Printf("[CACHE] minifying %s failed: %v", c.Path(), err)
		return nil
	}
	c.Response().SetBody(body)
	pageCache.SetWithTTL(key, body, 0, config.PageCacheTTL)
	return nil
}

func minifyPage(in []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := minifier.Minify("text/html", &buf, bytes.NewReader(in)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PageCacheStats returns cache metrics for the admin panel.
func PageCacheStats() map[string]interface{} {
	if pageCache == nil {
		return map[string]interface{}{}
	}
	return pageCache.Stats()
}

// ClearPageCache drops every cached page.
func ClearPageCache() {
	if pageCache != nil {
		pageCache.Clear()
	}
}
