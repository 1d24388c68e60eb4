package ui

// ---- Footer Theme ----

// FooterTheme maps each semantic region of the footer to a style token.
// The footer treats tokens as opaque strings; swapping the theme restyles
// the footer without touching its structure.
type FooterTheme struct {
	Container  string
	Inner      string
	TopRow     string
	Brand      string
	Tagline    string
	SocialRow  string
	SocialLink string
	Columns    string
	Heading    string
	LinkList   string
	Link       string
	Divider    string
	Copyright  string
}

// DefaultFooterTheme returns the stock CollabVerse footer styling.
func DefaultFooterTheme() FooterTheme {
	return FooterTheme{
		Container:  "bg-gray-50 border-t border-gray-200 mt-16",
		Inner:      "max-w-6xl mx-auto px-4 py-12",
		TopRow:     "flex flex-col gap-10 md:flex-row md:justify-between",
		Brand:      "max-w-xs",
		Tagline:    "mt-4 text-sm text-gray-600",
		SocialRow:  "mt-6 flex items-center gap-4",
		SocialLink: "text-gray-500 hover:text-gray-900",
		Columns:    "grid grid-cols-2 gap-8 md:grid-cols-3",
		Heading:    "text-sm font-semibold uppercase tracking-wider text-gray-900",
		LinkList:   "mt-4 space-y-2",
		Link:       "text-sm text-gray-600 hover:text-gray-900",
		Divider:    "mt-12 border-gray-200",
		Copyright:  "mt-8 text-center text-sm text-gray-500",
	}
}
