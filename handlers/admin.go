package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/collabverse/site/contact"
	"github.com/collabverse/site/local"
	"github.com/collabverse/site/ui"
	"github.com/collabverse/site/waitlist"
)

// renderAdminSection returns just the section for htmx tab switches and the
// full page for direct navigation.
func renderAdminSection(c *fiber.Ctx, activeSection string, content g.Node) error {
	section := ui.AdminSectionPage(local.GetAdminName(c), c.Path(), activeSection, content)
	if c.Get("HX-Request") == "true" {
		return render(c, section)
	}
	return render(c, ui.Page("Admin", c.Path(), []g.Node{section}))
}

// HandleAdminDashboard lands on the waitlist section.
func HandleAdminDashboard(c *fiber.Ctx) error {
	return HandleAdminWaitlist(c)
}

func HandleAdminWaitlist(c *fiber.Ctx) error {
	signups, err := waitlist.All()
	if err != nil {
		log.Printf("[ADMIN] loading waitlist failed: %v", err)
		return fiber.ErrInternalServerError
	}
	return renderAdminSection(c, "waitlist", ui.AdminWaitlistSection(signups))
}

func HandleAdminMessages(c *fiber.Ctx) error {
	messages, err := contact.All()
	if err != nil {
		log.Printf("[ADMIN] loading messages failed: %v", err)
		return fiber.ErrInternalServerError
	}
	return renderAdminSection(c, "messages", ui.AdminMessagesSection(messages))
}

func HandleAdminPageCache(c *fiber.Ctx) error {
	return renderAdminSection(c, "page-cache", ui.AdminPageCacheSection(PageCacheStats()))
}

// HandleRemoveWaitlistSignup deletes a signup and re-renders the table.
func HandleRemoveWaitlistSignup(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if err := waitlist.Remove(id); err != nil {
		log.Printf("[ADMIN] removing signup %d failed: %v", id, err)
		return fiber.ErrInternalServerError
	}
	log.Printf("[ADMIN] removed waitlist signup %d", id)

	signups, err := waitlist.All()
	if err != nil {
		log.Printf("[ADMIN] loading waitlist failed: %v", err)
		return fiber.ErrInternalServerError
	}
	return render(c, ui.AdminWaitlistSection(signups))
}

// HandleMarkMessageRead marks a contact message as read and re-renders the list.
func HandleMarkMessageRead(c *fiber.Ctx) error {
	id, err := ParseIntParam(c, "id")
	if err != nil {
		return err
	}
	if err := contact.MarkRead(id); err != nil {
		log.Printf("[ADMIN] marking message %d read failed: %v", id, err)
		return fiber.ErrInternalServerError
	}

	messages, err := contact.All()
	if err != nil {
		log.Printf("[ADMIN] loading messages failed: %v", err)
		return fiber.ErrInternalServerError
	}
	return render(c, ui.AdminMessagesSection(messages))
}

// HandleClearPageCache empties the page cache and re-renders the stats panel.
func HandleClearPageCache(c *fiber.Ctx) error {
	ClearPageCache()
	log.Printf("[CACHE] page cache cleared by %s", local.GetAdminName(c))
	return render(c, ui.AdminPageCacheSection(PageCacheStats()))
}

// HandleAdminExportWaitlist downloads every signup as a JSON attachment.
func HandleAdminExportWaitlist(c *fiber.Ctx) error {
	signups, err := waitlist.All()
	if err != nil {
		log.Printf("[ADMIN] exporting waitlist failed: %v", err)
		return fiber.ErrInternalServerError
	}
	if signups == nil {
		signups = []waitlist.Signup{}
	}

	filename := fmt.Sprintf("waitlist-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(signups)
}
