package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shazarali/portfolio/internal/sections"
	"github.com/shazarali/portfolio/internal/theme"
)

type HomeConfig struct {
	Meta   PageMeta
	Theme  theme.Theme
	Active sections.ID
	Year   int
}

// Home is the whole single-page view: hero, about, experience, skills,
// education, awards and footer in that order.
func Home(cfg HomeConfig) g.Node {
	if cfg.Active == "" {
		cfg.Active = sections.Order[0]
	}
	if cfg.Theme.Name == "" {
		cfg.Theme = theme.Dark
	}

	return Layout(cfg.Meta, cfg.Theme, cfg.Active,
		Div(
			Class("min-h-screen bg-gradient-to-br from-blue-950 via-gray-900 to-blue-950 text-white"),
			Background(),
			Navbar(cfg.Active),
			Main(
				Hero(),
				AboutSection(),
				ExperienceSection(),
				SkillsSection(),
				EducationSection(),
				AwardsSection(),
			),
			PageFooter(cfg.Year),
			ScrollTopButton(),
		),
	)
}
