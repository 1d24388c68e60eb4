package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/collabverse/site/config"
)

func HomePage(path string, waitlistJoined bool) g.Node {
	site := config.Active()
	return Page(
		site.Name,
		path,
		[]g.Node{
			hero(site),
			featuresSection(),
			pricingSection(),
			waitlistSection(waitlistJoined),
		},
	)
}

func hero(site config.Site) g.Node {
	return Div(
		Class("text-center py-16"),
		H1(
			Class("text-5xl font-bold text-gray-900 mb-6"),
			g.Text("One workspace for your whole team"),
		),
		P(
			Class("text-xl text-gray-600 max-w-2xl mx-auto mb-8"),
			g.Text(site.Tagline+" Docs, tasks, chat, and whiteboards together, so work stops scattering across tools."),
		),
		Div(
			Class("flex justify-center gap-4"),
			button("Join the waitlist", withHref("/#waitlist"), withClass("text-lg px-8 py-3")),
			buttonSecondary("See features", withHref("/#features"), withClass("text-lg px-8 py-3")),
		),
	)
}

func featureCard(emoji, title, text string) g.Node {
	return Div(
		Class("bg-white border border-gray-200 rounded-lg p-6"),
		Div(Class("text-3xl mb-3"), g.Text(emoji)),
		H3(Class("text-lg font-semibold text-gray-900 mb-2"), g.Text(title)),
		P(Class("text-gray-600 text-sm"), g.Text(text)),
	)
}

func featuresSection() g.Node {
	return Section(
		ID("features"),
		Class("py-16"),
		H2(
			Class("text-3xl font-bold text-center text-gray-900 mb-12"),
			g.Text("Everything your team needs"),
		),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
			featureCard("📄", "Docs & wikis",
				"Write specs, notes, and handbooks in one shared space with live co-editing."),
			featureCard("✅", "Tasks & boards",
				"Plan sprints on boards that stay linked to the docs and discussions behind them."),
			featureCard("💬", "Team chat",
				"Threaded conversations next to the work, so decisions never get lost in scrollback."),
			featureCard("🖊️", "Whiteboards",
				"Sketch flows and run workshops on an infinite canvas the whole team can mark up."),
			featureCard("🔌", "Integrations",
				"Connect the tools you already use and keep everything searchable in one place."),
			featureCard("🔒", "Permissions & SSO",
				"Granular sharing controls with single sign-on for teams that need it."),
		),
	)
}

func pricingCard(tier, price, period string, features []string, highlighted bool) g.Node {
	cardClass := "bg-white border border-gray-200 rounded-lg p-8"
	if highlighted {
		cardClass = "bg-white border-2 border-indigo-600 rounded-lg p-8 relative"
	}

	items := []g.Node{}
	for _, f := range features {
		items = append(items,
			Li(
				Class("flex items-start gap-2 text-sm text-gray-600"),
				Span(Class("text-indigo-600"), g.Text("✓")),
				g.Text(f),
			),
		)
	}

	return Div(
		Class(cardClass),
		g.If(highlighted,
			Span(
				Class("absolute -top-3 left-1/2 -translate-x-1/2 bg-indigo-600 text-white text-xs font-medium px-3 py-1 rounded-full"),
				g.Text("Most popular"),
			),
		),
		H3(Class("text-lg font-semibold text-gray-900"), g.Text(tier)),
		Div(
			Class("mt-4 mb-6"),
			Span(Class("text-4xl font-bold text-gray-900"), g.Text(price)),
			Span(Class("text-gray-500 text-sm"), g.Text(period)),
		),
		Ul(
			Class("space-y-3 mb-8"),
			g.Group(items),
		),
		button("Join the waitlist", withHref("/#waitlist"), withClass("w-full text-center")),
	)
}

func pricingSection() g.Node {
	return Section(
		ID("pricing"),
		Class("py-16"),
		H2(
			Class("text-3xl font-bold text-center text-gray-900 mb-12"),
			g.Text("Simple pricing"),
		),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-6 max-w-4xl mx-auto"),
			pricingCard("Free", "$0", "/forever", []string{
				"Up to 10 teammates",
				"Unlimited docs and boards",
				"30 day chat history",
			}, false),
			pricingCard("Team", "$12", "/user/month", []string{
				"Everything in Free",
				"Unlimited history",
				"Guest access",
				"Priority support",
			}, true),
			pricingCard("Enterprise", "Custom", "", []string{
				"Everything in Team",
				"SSO and SCIM",
				"Audit logs",
				"Dedicated success manager",
			}, false),
		),
	)
}

func waitlistSection(joined bool) g.Node {
	if joined {
		return Section(
			ID("waitlist"),
			Class("py-16"),
			Div(
				Class("max-w-xl mx-auto text-center bg-green-50 border border-green-200 rounded-lg p-8"),
				H2(Class("text-2xl font-bold text-green-900 mb-2"), g.Text("You're on the list! 🎉")),
				P(Class("text-green-800"), g.Text("We'll email you as soon as your workspace is ready.")),
			),
		)
	}

	return Section(
		ID("waitlist"),
		Class("py-16"),
		Div(
			Class("max-w-xl mx-auto text-center"),
			H2(Class("text-3xl font-bold text-gray-900 mb-4"), g.Text("Get early access")),
			P(Class("text-gray-600 mb-8"), g.Text("CollabVerse is rolling out in waves. Leave your email and we'll save you a spot.")),
			formContainer("waitlistForm",
				Input(
					Type("hidden"),
					Name("source"),
					Value("home"),
				),
				Div(
					Class("flex gap-2"),
					emailInput("email", "email", "you@company.com"),
					button("Join",
						withType("submit"),
						withAttributes(
							hx.Post("/api/waitlist"),
							hx.Target("#result"),
							hx.Indicator("#waitlistForm"),
						),
					),
				),
				resultContainer(),
			),
		),
	)
}

func ContactPage(path string) g.Node {
	return Page(
		"Contact",
		path,
		[]g.Node{
			pageHeader("Contact"),
			contentContainer(
				P(
					Class("text-gray-600 mb-8"),
					g.Text("Questions about CollabVerse, the waitlist, or working with us? Send a message and a human will get back to you."),
				),
				formContainer("contactForm",
					formGroup("Name", "name",
						TextInput("name", "name", ""),
					),
					formGroup("Email", "email",
						emailInput("email", "email", "you@company.com"),
					),
					formGroup("Subject", "subject",
						TextInput("subject", "subject", ""),
					),
					formGroup("Message", "message",
						textArea("message", "message", 5),
					),
					actionButtons(
						button("Send message",
							withType("submit"),
							withAttributes(
								hx.Post("/api/contact"),
								hx.Target("#result"),
								hx.Indicator("#contactForm"),
							),
						),
					),
					resultContainer(),
				),
			),
		},
	)
}
