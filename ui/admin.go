package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/collabverse/site/contact"
	"github.com/collabverse/site/waitlist"
)

// AdminSectionPage renders the admin section navigation and the current section content.
func AdminSectionPage(adminName string, path, activeSection string, content g.Node) g.Node {
	return Div(
		ID("admin-section"),
		Div(
			Class("flex items-center justify-between mb-8"),
			H1(Class("text-4xl font-bold"), g.Text("Admin Dashboard")),
			Div(
				Class("flex items-center gap-4"),
				Span(Class("text-sm text-gray-600"), g.Text("Signed in as "+adminName)),
				buttonDanger("Logout",
					withClass("px-3 py-1 text-sm"),
					withAttributes(
						hx.Post("/logout"),
					),
				),
			),
		),
		Div(Class("text-gray-600 text-sm mb-6"), g.Text("Manage waitlist signups, contact messages, and the page cache.")),
		adminNavigation(activeSection),
		Div(
			ID("admin-section-content"),
			Class("mt-6"),
			content,
		),
	)
}

// adminNavigation renders the tab navigation for the admin page
func adminNavigation(activeSection string) g.Node {
	sections := []struct {
		name  string
		label string
		href  string
	}{
		{"waitlist", "Waitlist", "/admin/waitlist"},
		{"messages", "Messages", "/admin/messages"},
		{"page-cache", "Page Cache", "/admin/page-cache"},
	}

	var tabNodes []g.Node
	for _, section := range sections {
		var classes string
		if activeSection == section.name {
			classes = "px-4 py-2 text-sm font-medium text-indigo-600 border-b-2 border-indigo-600"
		} else {
			classes = "px-4 py-2 text-sm font-medium text-gray-500 hover:text-gray-700 hover:border-gray-300 border-b-2 border-transparent"
		}

		tabNodes = append(tabNodes,
			A(
				Href(section.href),
				Class(classes),
				hx.Get(section.href),
				hx.Target("#admin-section"),
				hx.Swap("outerHTML"),
				g.Text(section.label),
			),
		)
	}

	return Div(
		Class("border-b border-gray-200 mb-6"),
		Nav(
			Class("flex space-x-8"),
			g.Group(tabNodes),
		),
	)
}

func AdminWaitlistSection(signups []waitlist.Signup) g.Node {
	return Div(
		Class("space-y-4"),
		Div(Class("text-lg font-medium text-gray-900"), g.Textf("Waitlist Signups (%d)", len(signups))),
		Div(Class("text-gray-600 text-sm"), g.Text("Everyone waiting for a CollabVerse workspace, newest first.")),
		Div(
			buttonSecondary("Export JSON", withHref("/api/admin/waitlist/export")),
		),
		AdminWaitlistTable(signups),
	)
}

func AdminWaitlistTable(signups []waitlist.Signup) g.Node {
	if len(signups) == 0 {
		return Div(
			Class("text-gray-500 text-sm p-8 text-center border border-dashed rounded"),
			g.Text("No signups yet."),
		)
	}

	return Div(
		ID("waitlist-table"),
		Class("overflow-x-auto"),
		Table(
			Class("min-w-full border border-gray-300 bg-white shadow-sm"),
			THead(
				Tr(
					Class("bg-gray-200"),
					Th(Class("border border-gray-300 px-4 py-2 text-left font-semibold"), g.Text("Email")),
					Th(Class("border border-gray-300 px-4 py-2 text-left font-semibold"), g.Text("Source")),
					Th(Class("border border-gray-300 px-4 py-2 text-left font-semibold"), g.Text("Joined")),
					Th(Class("border border-gray-300 px-4 py-2 text-left font-semibold"), g.Text("Actions")),
				),
			),
			TBody(
				g.Group(g.Map(signups, func(s waitlist.Signup) g.Node {
					return Tr(
						Class("hover:bg-gray-50"),
						Td(Class("border border-gray-300 px-4 py-2"), g.Text(s.Email)),
						Td(Class("border border-gray-300 px-4 py-2"), g.Text(s.Source)),
						Td(Class("border border-gray-300 px-4 py-2"), g.Text(humanize.Time(s.CreatedAt))),
						Td(Class("border border-gray-300 px-4 py-2"),
							Button(
								Type("button"),
								Class("px-2 py-1 bg-red-500 text-white rounded hover:bg-red-600 text-sm"),
								hx.Delete(fmt.Sprintf("/api/admin/waitlist/%d", s.ID)),
								hx.Target("#admin-section-content"),
								hx.Swap("innerHTML"),
								g.Text("Remove"),
							),
						),
					)
				})),
			),
		),
	)
}

func AdminMessagesSection(messages []contact.Message) g.Node {
	return Div(
		Class("space-y-4"),
		Div(Class("text-lg font-medium text-gray-900"), g.Textf("Contact Messages (%d)", len(messages))),
		Div(Class("text-gray-600 text-sm"), g.Text("Messages from the contact form, newest first.")),
		messageList(messages),
	)
}

func messageList(messages []contact.Message) g.Node {
	if len(messages) == 0 {
		return Div(
			Class("text-gray-500 text-sm p-8 text-center border border-dashed rounded"),
			g.Text("No messages yet."),
		)
	}

	cards := []g.Node{}
	for _, m := range messages {
		cards = append(cards, messageCard(m))
	}
	return Div(
		Class("space-y-3"),
		g.Group(cards),
	)
}

func messageCard(m contact.Message) g.Node {
	badge := Span(
		Class("inline-flex items-center px-2 py-1 rounded-full text-xs font-medium bg-yellow-100 text-yellow-800"),
		g.Text("Unread"),
	)
	if m.IsRead() {
		badge = Span(
			Class("inline-flex items-center px-2 py-1 rounded-full text-xs font-medium bg-green-100 text-green-800"),
			g.Text("Read"),
		)
	}

	return Div(
		Class("border rounded p-4 bg-white"),
		Div(
			Class("flex items-center justify-between mb-2"),
			Span(Class("font-medium"), g.Text(m.Subject)),
			badge,
		),
		Div(
			Class("text-xs text-gray-500 mb-2"),
			g.Textf("From %s (%s), %s", m.Name, m.Email, humanize.Time(m.CreatedAt)),
		),
		P(Class("text-sm text-gray-700 whitespace-pre-line"), g.Text(m.Body)),
		g.If(!m.IsRead(),
			Div(
				Class("mt-3"),
				Button(
					Type("button"),
					Class("px-2 py-1 text-xs text-indigo-600 border border-indigo-200 rounded hover:bg-indigo-50"),
					hx.Post(fmt.Sprintf("/api/admin/messages/%d/read", m.ID)),
					hx.Target("#admin-section-content"),
					hx.Swap("innerHTML"),
					g.Text("Mark as read"),
				),
			),
		),
	)
}

func AdminPageCacheSection(stats map[string]interface{}) g.Node {
	return Div(
		Class("space-y-4"),
		Div(Class("text-lg font-medium text-gray-900"), g.Text("Page Cache Management")),
		Div(Class("text-gray-600 text-sm"), g.Text("Rendered pages are cached as minified HTML. Clear the cache after editing site.yaml.")),
		CacheStatsPanel("Cache Statistics", stats, "/api/admin/page-cache/clear", "/admin/page-cache"),
	)
}

// Generic cache stats panel component
func CacheStatsPanel(title string, stats map[string]interface{}, clearEndpoint, refreshEndpoint string) g.Node {
	return Div(
		Class("bg-gray-100 p-4 rounded-lg mb-4"),
		H2(Class("text-lg font-semibold mb-2"), g.Text(title)),
		Div(
			Class("grid grid-cols-2 md:grid-cols-4 gap-4 mb-4"),
			statCard("Hits", "%d", stats["hits"]),
			statCard("Misses", "%d", stats["misses"]),
			statCard("Hit Rate", "%.1f%%", stats["hit_rate"]),
			statCard("Sets", "%d", stats["sets"]),
			statCard("Memory Used", "%.0f KB", stats["memory_used_kb"]),
			statCard("Total Added", "%.0f KB", stats["total_added_kb"]),
			statCard("Total Evicted", "%.0f KB", stats["total_evicted_kb"]),
			statCard("Current Items", "%d", stats["current_items"]),
		),
		Div(
			Class("flex gap-4"),
			buttonDanger("Clear Cache",
				withClass("px-4 py-2"),
				withAttributes(
					hx.Post(clearEndpoint),
					hx.Target("#admin-section-content"),
					hx.Swap("innerHTML"),
				),
			),
			buttonSecondary("Refresh Stats",
				withClass("px-4 py-2"),
				withAttributes(
					hx.Get(refreshEndpoint),
					hx.Target("#admin-section"),
					hx.Swap("outerHTML"),
				),
			),
		),
	)
}

func statCard(label, format string, value interface{}) g.Node {
	return Div(
		Class("bg-white p-3 rounded border"),
		Strong(g.Text(label+": ")),
		g.Textf(format, value),
	)
}
