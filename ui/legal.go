package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func TermsOfServicePage(path string) g.Node {
	return Page(
		"Terms of Service",
		path,
		[]g.Node{
			pageHeader("Terms of Service"),
			contentContainer(
				Div(
					Class("prose max-w-none"),
					H2(Class("text-xl font-semibold mb-4"), g.Text("Terms of Service")),
					P(Class("mb-4"), g.Text("Last updated: August 2025")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("1. Acceptance of Terms")),
					P(Class("mb-4"), g.Text("By accessing and using the CollabVerse website, including joining the waitlist, you accept and agree to be bound by the terms and provisions of this agreement.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("2. Early Access")),
					P(Class("mb-4"), g.Text("CollabVerse is in early access. Joining the waitlist reserves a place but does not guarantee access by any particular date. Features described on this site may change before or after launch.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("3. Use License")),
					P(Class("mb-4"), g.Text("Permission is granted to view the materials on this website for personal and evaluation purposes. The CollabVerse name, logo, and site content may not be reproduced for commercial purposes without written consent.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("4. Disclaimer")),
					P(Class("mb-4"), g.Text("The materials on this website are provided on an 'as is' basis. CollabVerse makes no warranties, expressed or implied, and hereby disclaims all other warranties including without limitation implied warranties of merchantability or fitness for a particular purpose.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("5. Limitations")),
					P(Class("mb-4"), g.Text("In no event shall CollabVerse or its suppliers be liable for any damages arising out of the use or inability to use the materials on this website.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("6. Links")),
					P(Class("mb-4"), g.Text("CollabVerse links to external social networks and has not reviewed all content on those services. The inclusion of any link does not imply endorsement.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("7. Revisions")),
					P(Class("mb-4"), g.Text("CollabVerse may revise these terms at any time without notice. By using this website you agree to be bound by the then current version of these terms.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("8. Governing Law")),
					P(Class("mb-4"), g.Text("Any claim relating to this website shall be governed by the laws of the United States without regard to its conflict of law provisions.")),
				),
			),
		},
	)
}

func PrivacyPolicyPage(path string) g.Node {
	return Page(
		"Privacy Policy",
		path,
		[]g.Node{
			pageHeader("Privacy Policy"),
			contentContainer(
				Div(
					Class("prose max-w-none"),
					H2(Class("text-xl font-semibold mb-4"), g.Text("Privacy Policy")),
					P(Class("mb-4"), g.Text("Last updated: August 2025")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("1. Information We Collect")),
					P(Class("mb-4"), g.Text("This website collects only what you choose to send us:")),
					Ul(Class("ml-4 mb-4 space-y-2"),
						Li(g.Text("• Email address - when you join the waitlist")),
						Li(g.Text("• Name, email, and message content - when you use the contact form")),
					),
					P(Class("mb-4"), g.Text("We do not require accounts, do not collect payment information, and do not buy or enrich data about you from third parties.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("2. How We Use Your Information")),
					Ul(Class("ml-4 mb-4 space-y-2"),
						Li(g.Text("• Waitlist emails are used to invite you to CollabVerse and for occasional launch updates")),
						Li(g.Text("• Contact messages are used to answer your message")),
					),
					P(Class("mb-4"), g.Text("We do not sell, trade, or share your information with third parties for marketing.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("3. Cookies")),
					P(Class("mb-4"), g.Text("We use a minimal set of cookies solely for essential functionality. We do not use analytics or advertising cookies.")),

					Div(Class("ml-4 mb-4"),
						H5(Class("text-sm font-semibold mb-1"), g.Text("waitlist_joined")),
						P(Class("text-sm mb-2"), g.Text("Purpose: Remembers that you already joined the waitlist so we stop asking.")),
						P(Class("text-sm mb-2"), g.Text("Data collected: A single yes/no flag.")),
						P(Class("text-sm mb-2"), g.Text("Retention: Expires after one year.")),
					),

					Div(Class("ml-4 mb-4"),
						H5(Class("text-sm font-semibold mb-1"), g.Text("auth_token")),
						P(Class("text-sm mb-2"), g.Text("Purpose: Maintains the signed-in session for site administrators. Regular visitors never receive this cookie.")),
						P(Class("text-sm mb-2"), g.Text("Data collected: A signed session token.")),
						P(Class("text-sm mb-2"), g.Text("Retention: Expires after 24 hours or on logout.")),
					),

					H3(Class("text-lg font-semibold mb-2"), g.Text("4. Data Security")),
					P(Class("mb-4"), g.Text("We implement appropriate security measures to protect your information against unauthorized access, alteration, disclosure, or destruction.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("5. Your Rights")),
					P(Class("mb-4"), g.Text("You may ask us at any time to show, correct, or delete the information we hold about you. The fastest route is the contact form, or any of the social channels in the footer.")),

					H3(Class("text-lg font-semibold mb-2"), g.Text("6. Changes to This Policy")),
					P(Class("mb-4"), g.Text("We may update this privacy policy from time to time. We will post any changes on this page.")),
				),
			),
		},
	)
}
