package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/collabverse/site/config"
)

func indicator() g.Node {
	return Div(
		ID("indicator"),
		Class("htmx-indicator flex items-center gap-2 text-indigo-600"),
		Div(
			Class("w-4 h-4 border-2 border-indigo-600 border-t-transparent rounded-full animate-spin"),
		),
		g.Text("Loading..."),
	)
}

func navLink(label, href, currentPath string) g.Node {
	class := "text-gray-600 hover:text-gray-900"
	if href == currentPath {
		class = "text-gray-900 font-medium"
	}
	return A(Href(href), Class(class), g.Text(label))
}

func navigation(site config.Site, currentPath string) g.Node {
	return Nav(
		Class("border-b border-gray-200 bg-white"),
		Div(
			Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			A(Href("/"), Class("text-xl font-bold"), g.Text(site.Name)),
			indicator(),
			Div(
				Class("hidden md:flex items-center space-x-6"),
				navLink("Features", "/#features", currentPath),
				navLink("Pricing", "/#pricing", currentPath),
				navLink("About", "/about", currentPath),
				navLink("Contact", "/contact", currentPath),
			),
			button("Join waitlist", withHref("/#waitlist")),
		),
	)
}
