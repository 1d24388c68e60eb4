package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/collabverse/site/config"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Text(message),
	)
}

func SuccessMessage(message string, redirectURL string) g.Node {
	nodes := []g.Node{
		Class("bg-green-100 border-green-500 text-green-700 px-4 py-3 rounded"),
		g.Text(message),
	}
	if redirectURL != "" {
		nodes[1] = g.Text(message + "...redirecting")
		nodes = append(nodes, Script(g.Raw(fmt.Sprintf(
			"setTimeout(function() { window.location = '%s' }, %d);",
			redirectURL, config.ServerRedirectDelay.Milliseconds())),
		))
	}
	return Div(nodes...)
}

func resultContainer() g.Node {
	return Div(
		ID("result"),
		Class("mt-4"),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"",
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(Class("text-gray-600"), g.Text(message)),
			actionButtons(
				button("Back to Home", withHref("/")),
			),
		},
	)
}
