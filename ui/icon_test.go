package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogo(t *testing.T) {
	tests := []struct {
		name     string
		variant  string
		expected string
	}{
		{
			name:     "black variant",
			variant:  "black",
			expected: `src="/images/logo-black.svg"`,
		},
		{
			name:     "white variant",
			variant:  "white",
			expected: `src="/images/logo-white.svg"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderToString(t, Logo(tt.variant))
			assert.Contains(t, html, tt.expected)
			assert.Contains(t, html, `alt="CollabVerse"`)
		})
	}
}

func TestLogoUnknownVariantRendersPlaceholder(t *testing.T) {
	html := renderToString(t, Logo("sepia"))

	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "<span")
	assert.Contains(t, html, `aria-hidden="true"`)
}

func TestSocialIcon(t *testing.T) {
	tests := []struct {
		name     string
		icon     string
		label    string
		expected string
	}{
		{
			name:     "twitter",
			icon:     "twitter",
			label:    "Twitter",
			expected: `src="/images/twitter.svg"`,
		},
		{
			name:     "github",
			icon:     "github",
			label:    "GitHub",
			expected: `src="/images/github.svg"`,
		},
		{
			name:     "linkedin",
			icon:     "linkedin",
			label:    "LinkedIn",
			expected: `src="/images/linkedin.svg"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := renderToString(t, SocialIcon(tt.icon, tt.label))
			assert.Contains(t, html, tt.expected)
			assert.Contains(t, html, `alt="`+tt.label+`"`)
		})
	}
}

func TestSocialIconUnknownNameRendersPlaceholder(t *testing.T) {
	html := renderToString(t, SocialIcon("mastodon", "Mastodon"))

	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, `aria-hidden="true"`)
	// Placeholder keeps the glyph dimensions so the row does not collapse.
	assert.True(t, strings.Contains(html, "w-5 h-5"))
}
