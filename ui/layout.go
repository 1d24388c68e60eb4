package ui

import (
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/collabverse/site/config"
)

// ---- Page Layout ----

func Page(title string, currentPath string, content []g.Node) g.Node {
	site := config.Active()
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: site.Tagline,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/svg+xml"), Href("/images/logo-black.svg")),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("min-h-screen flex flex-col"),
				navigation(site, currentPath),
				Main(
					Class("container mx-auto px-4 py-8 w-full flex-1"),
					g.Group(content),
				),
				PageFooter(site, time.Now()),
			),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
