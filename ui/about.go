package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func AboutPage(path string) g.Node {
	return Page(
		"About",
		path,
		[]g.Node{
			pageHeader("About CollabVerse"),
			contentContainer(
				Div(
					Class("prose max-w-none"),
					H2(Class("text-xl font-semibold mb-4"), g.Text("About CollabVerse")),
					P(Class("mb-4"), g.Text("CollabVerse is the all-in-one workspace for modern teams. We bring docs, tasks, chat, and whiteboards into a single connected surface so work stops scattering across a dozen tools.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("Why We're Building It")),
					P(Class("mb-4"), g.Text("Every team we've worked on ran the same gauntlet: specs in one app, tasks in another, decisions buried in chat, diagrams in a fourth tool nobody could find. Context lives in the seams between tools, and the seams are exactly where it gets lost.")),
					P(Class("mb-4"), g.Text("CollabVerse closes the seams. A task links to the doc that motivated it, the discussion that shaped it, and the whiteboard where it was sketched, all without leaving the page.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("What's in the Workspace")),
					Ul(Class("ml-4 mb-4 space-y-2"),
						Li(g.Text("• Shared docs and wikis with live co-editing")),
						Li(g.Text("• Project boards that stay linked to their context")),
						Li(g.Text("• Threaded team chat next to the work")),
						Li(g.Text("• Whiteboards for workshops and systems sketches")),
						Li(g.Text("• Integrations that keep everything searchable in one place")),
					),

					H3(Class("text-lg font-semibold mb-2"), g.Text("Where We Are")),
					P(Class("mb-4"), g.Text("We're a small remote team, and CollabVerse is in early access. We onboard new workspaces in waves so every team gets a fast product and a real answer when they write in. ")),
					A(
						Href("/#waitlist"),
						Class("text-indigo-600 hover:text-indigo-800 underline"),
						g.Text("Join the waitlist"),
					),
					g.Text(" to save your spot."),

					H3(Class("text-lg font-semibold mb-2"), g.Text("Contact Us")),
					P(Class("mb-4"), g.Text("Questions, ideas, or just want to talk shop? We read everything sent through the ")),
					A(
						Href("/contact"),
						Class("text-indigo-600 hover:text-indigo-800 underline"),
						g.Text("contact page"),
					),
					g.Text("."),
				),
			),
		},
	)
}
