package handlers

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/collabverse/site/config"
)

type SitemapURL struct {
	Loc        string    `xml:"loc"`
	LastMod    time.Time `xml:"lastmod"`
	ChangeFreq string    `xml:"changefreq"`
	Priority   string    `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

func HandleSitemap(c *fiber.Ctx) error {
	now := time.Now()

	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{
				Loc:        config.BaseURL + "/",
				LastMod:    now,
				ChangeFreq: "daily",
				Priority:   "1.0",
			},
			{
				Loc:        config.BaseURL + "/about",
				LastMod:    now,
				ChangeFreq: "monthly",
				Priority:   "0.7",
			},
			{
				Loc:        config.BaseURL + "/contact",
				LastMod:    now,
				ChangeFreq: "monthly",
				Priority:   "0.6",
			},
			{
				Loc:        config.BaseURL + "/terms",
				LastMod:    now,
				ChangeFreq: "yearly",
				Priority:   "0.3",
			},
			{
				Loc:        config.BaseURL + "/privacy",
				LastMod:    now,
				ChangeFreq: "yearly",
				Priority:   "0.3",
			},
		},
	}

	c.Set("Content-Type", "application/xml")
	return c.XML(sitemap)
}
