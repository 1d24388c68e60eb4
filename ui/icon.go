package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Brand Mark and Icon Components ----

var logoSrcs = map[string]string{
	"black": "/images/logo-black.svg",
	"white": "/images/logo-white.svg",
}

// Logo renders the brand mark in the requested visual variant. An unknown
// variant renders an invisible placeholder of the same dimensions so the
// surrounding layout holds its shape.
func Logo(variant string) g.Node {
	src, ok := logoSrcs[variant]
	if !ok {
		return Span(
			Class("inline-block h-8 w-32"),
			Aria("hidden", "true"),
		)
	}
	return Img(
		Src(src),
		Alt("CollabVerse"),
		Class("h-8 w-auto"),
	)
}

var socialIconSrcs = map[string]string{
	"twitter":  "/images/twitter.svg",
	"github":   "/images/github.svg",
	"linkedin": "/images/linkedin.svg",
}

// SocialIcon renders the glyph for a social network. A name with no known
// glyph renders an empty placeholder of the same dimensions; a missing icon
// never takes down the page around it.
func SocialIcon(name, label string) g.Node {
	src, ok := socialIconSrcs[name]
	if !ok {
		return Span(
			Class("inline-block w-5 h-5"),
			Aria("hidden", "true"),
		)
	}
	return Img(
		Src(src),
		Alt(label),
		Class("w-5 h-5 inline align-middle"),
	)
}
