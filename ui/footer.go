package ui

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/collabverse/site/config"
)

// ---- Page Footer ----

// PageFooter renders the site footer for the given site configuration at the
// given instant, using the default theme.
func PageFooter(site config.Site, now time.Time) g.Node {
	return PageFooterWithTheme(site, now, DefaultFooterTheme())
}

// PageFooterWithTheme renders the brand block, one titled link column per
// configured group in declaration order, and a copyright line for the
// calendar year of now. It is pure: same site, instant, and theme produce
// the same tree.
func PageFooterWithTheme(site config.Site, now time.Time, theme FooterTheme) g.Node {
	year := now.Year()
	return Footer(
		Class(theme.Container),
		Div(
			Class(theme.Inner),
			Div(
				Class(theme.TopRow),
				footerBrand(site, theme),
				footerColumns(site.FooterGroups, theme),
			),
			Hr(Class(theme.Divider)),
			P(
				Class(theme.Copyright),
				g.Textf("© %d %s. All rights reserved.", year, site.Name),
			),
		),
	)
}

func footerBrand(site config.Site, theme FooterTheme) g.Node {
	socials := []g.Node{}
	for _, s := range site.Social {
		socials = append(socials,
			A(
				Href(s.Href),
				Class(theme.SocialLink),
				Aria("label", s.Name),
				SocialIcon(s.Icon, s.Name),
			),
		)
	}

	return Div(
		Class(theme.Brand),
		Logo(site.LogoVariant),
		P(Class(theme.Tagline), g.Text(site.Tagline)),
		Div(
			Class(theme.SocialRow),
			g.Group(socials),
		),
	)
}

func footerColumns(groups []config.LinkGroup, theme FooterTheme) g.Node {
	columns := []g.Node{}
	for _, group := range groups {
		columns = append(columns, footerColumn(group, theme))
	}
	return Div(
		Class(theme.Columns),
		g.Group(columns),
	)
}

func footerColumn(group config.LinkGroup, theme FooterTheme) g.Node {
	items := []g.Node{}
	for _, link := range group.Links {
		items = append(items,
			Li(
				A(Href(link.Href), Class(theme.Link), g.Text(link.Name)),
			),
		)
	}
	return Div(
		H3(Class(theme.Heading), g.Text(group.Title)),
		Ul(
			Class(theme.LinkList),
			g.Group(items),
		),
	)
}
