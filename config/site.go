package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Link is one footer entry: a display label paired with a navigation target.
// An Href of "#" is a deliberate inert placeholder and renders as-is.
type Link struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// LinkGroup is a titled, ordered collection of links forming one footer
// column. Declaration order is rendering order.
type LinkGroup struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
}

// SocialLink is an external profile rendered as an icon in the footer brand
// block. Icon names a glyph known to the ui icon set; Name doubles as the
// accessible label announced to screen readers.
type SocialLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
	Icon string `yaml:"icon"`
}

// Site is the injected site configuration consumed by the view layer.
type Site struct {
	Name         string       `yaml:"name"`
	Tagline      string       `yaml:"tagline"`
	LogoVariant  string       `yaml:"logo_variant"`
	Social       []SocialLink `yaml:"social"`
	FooterGroups []LinkGroup  `yaml:"footer_groups"`
}

// DefaultSite returns the reference CollabVerse configuration. Callers that
// want different branding or links supply a site.yaml instead of editing
// these literals.
func DefaultSite() Site {
	return Site{
		Name:        "CollabVerse",
		Tagline:     "The all-in-one workspace for modern teams.",
		LogoVariant: "black",
		Social: []SocialLink{
			{Name: "Twitter", Href: "https://twitter.com/collabverse", Icon: "twitter"},
			{Name: "GitHub", Href: "https://github.com/collabverse", Icon: "github"},
			{Name: "LinkedIn", Href: "https://www.linkedin.com/company/collabverse", Icon: "linkedin"},
		},
		FooterGroups: []LinkGroup{
			{
				Title: "Product",
				Links: []Link{
					{Name: "Features", Href: "/#features"},
					{Name: "Pricing", Href: "/#pricing"},
					{Name: "Integrations", Href: "#"},
					{Name: "Changelog", Href: "#"},
				},
			},
			{
				Title: "Resources",
				Links: []Link{
					{Name: "Documentation", Href: "#"},
					{Name: "API Reference", Href: "#"},
					{Name: "Community", Href: "#"},
					{Name: "Support", Href: "/contact"},
				},
			},
			{
				Title: "Company",
				Links: []Link{
					{Name: "About", Href: "/about"},
					{Name: "Blog", Href: "#"},
					{Name: "Careers", Href: "#"},
					{Name: "Contact", Href: "/contact"},
				},
			},
		},
	}
}

// Validate rejects configurations the footer cannot render sensibly.
func (s Site) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("site name must not be empty")
	}
	for i, group := range s.FooterGroups {
		if group.Title == "" {
			return fmt.Errorf("footer group %d has an empty title", i)
		}
		if len(group.Links) == 0 {
			return fmt.Errorf("footer group %q has no links", group.Title)
		}
		for _, link := range group.Links {
			if link.Name == "" {
				return fmt.Errorf("footer group %q has a link with an empty name", group.Title)
			}
			if link.Href == "" {
				return fmt.Errorf("footer link %q has an empty href", link.Name)
			}
		}
	}
	for _, social := range s.Social {
		if social.Name == "" || social.Href == "" {
			return fmt.Errorf("social link %+v is missing a name or href", social)
		}
	}
	return nil
}

var active = DefaultSite()

// Init loads the site configuration file over the defaults. A missing file is
// not an error; the defaults stay active.
func Init(path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	site, err := SiteFromReader(f)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	active = site
	return nil
}

// SiteFromReader decodes a YAML site configuration. Fields left out of the
// document keep their default values.
func SiteFromReader(r io.Reader) (Site, error) {
	site := DefaultSite()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return Site{}, err
	}
	if site.LogoVariant == "" {
		site.LogoVariant = "black"
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Active returns the site configuration the server is running with.
func Active() Site {
	return active
}

// SetForTesting swaps the active site configuration and returns a restore
// function.
func SetForTesting(site Site) func() {
	prev := active
	active = site
	return func() { active = prev }
}
