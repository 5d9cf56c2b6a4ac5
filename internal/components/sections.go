package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shazarali/portfolio/internal/content"
	"github.com/shazarali/portfolio/internal/sections"
)

func AboutSection() g.Node {
	highlights := make([]g.Node, 0, len(content.Highlights))
	for i, h := range content.Highlights {
		highlights = append(highlights, Div(
			Class("reveal bg-gray-900/50 backdrop-blur-sm p-6 rounded-xl border border-white/10 hover:border-blue-500/30 transition-all"),
			reveal(i*100),
			Icon(h.Icon, "h-8 w-8 mb-4 "+h.Color),
			H3(Class("text-lg font-semibold mb-2"), g.Text(h.Title)),
			P(Class("text-sm text-gray-400"), g.Text(h.Description)),
		))
	}

	return SectionShell(sections.About,
		SectionHeading("About Me"),
		Div(
			Class("max-w-3xl mx-auto text-lg text-gray-300 space-y-6 reveal"),
			g.Attr("data-reveal", ""),
			g.Group(g.Map(content.AboutMe, func(p string) g.Node {
				return P(g.Text(p))
			})),
		),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-6 mt-16"),
			g.Group(highlights),
		),
	)
}

func ExperienceSection() g.Node {
	jobs := make([]g.Node, 0, len(content.Jobs))
	for i, job := range content.Jobs {
		jobs = append(jobs, Div(
			Class("reveal relative pl-8 md:pl-0 mb-12"),
			reveal(i*100),
			Div(Class("absolute left-0 md:left-1/2 w-4 h-4 rounded-full bg-blue-500 -translate-x-1/2 mt-6")),
			Card("overflow-hidden md:w-[calc(50%-2rem)] "+timelineSide(i),
				Div(
					Class("flex flex-col md:flex-row md:items-center justify-between mb-4"),
					Div(
						Div(
							Class("flex items-center gap-2"),
							g.If(job.Icon != "", Span(Class("text-blue-400"), Icon(job.Icon, "h-6 w-6"))),
							H3(Class("text-xl font-bold text-white"), g.Text(job.Role)),
						),
						Div(Class("text-blue-400"), g.Textf("%s | %s", job.Company, job.Location)),
					),
					Div(Class("text-sm text-gray-400 mt-2 md:mt-0"), g.Text(job.Period)),
				),
				bullets(job.Description),
			),
		))
	}

	return SectionShell(sections.Experience,
		SectionHeading("Work Experience"),
		Div(
			Class("relative"),
			Div(Class("absolute left-0 md:left-1/2 top-0 bottom-0 w-0.5 bg-gradient-to-b from-blue-500 to-purple-600 -translate-x-1/2")),
			g.Group(jobs),
		),
	)
}

func timelineSide(i int) string {
	if i%2 == 0 {
		return "md:mr-auto"
	}
	return "md:ml-auto"
}

func SkillsSection() g.Node {
	skills := make([]g.Node, 0, len(content.Skills))
	for i, s := range content.Skills {
		skills = append(skills, Div(
			Class("reveal"),
			reveal(i*100),
			Div(
				Class("flex justify-between mb-2"),
				Span(Class("font-medium"), g.Text(s.Name)),
				Span(Class("text-sm text-gray-400"), g.Text(s.YearsLabel())),
			),
			Div(
				Class("h-2 bg-gray-800 rounded-full overflow-hidden"),
				Div(
					Class("skill-bar h-full bg-gradient-to-r from-blue-500 to-purple-600"),
					g.Attr("data-level", fmt.Sprint(s.Level)),
					Style(fmt.Sprintf("--level: %d%%", s.Level)),
				),
			),
		))
	}

	return SectionShell(sections.Skills,
		SectionHeading("Skills & Expertise"),
		Div(
			Class("grid grid-cols-1 lg:grid-cols-2 gap-12"),
			Card("h-full",
				H3(Class("text-2xl font-bold mb-6 "+gradientText), g.Text("Technical Skills")),
				Div(Class("space-y-6"), g.Group(skills)),
			),
			Div(
				Class("space-y-6"),
				Card("",
					H3(Class("text-2xl font-bold mb-6 "+gradientText), g.Text("Languages")),
					g.Group(g.Map(content.Languages, func(l content.Language) g.Node {
						return Div(
							Class("flex items-center justify-between"),
							Div(Class("font-medium"), g.Text(l.Name)),
							Span(
								Class("rounded-full px-3 py-1 text-xs font-semibold bg-gradient-to-r from-blue-500 to-purple-500"),
								g.Text(l.Proficiency),
							),
						)
					})),
				),
				Card("",
					H3(Class("text-2xl font-bold mb-6 "+gradientText), g.Text("Core Values")),
					Div(
						Class("space-y-4"),
						g.Group(g.Map(content.Values, func(v content.Value) g.Node {
							return Div(
								H4(Class("font-semibold text-blue-400"), g.Text(v.Title)),
								P(Class("text-gray-300 text-sm"), g.Text(v.Description)),
							)
						})),
					),
				),
			),
		),
	)
}

func EducationSection() g.Node {
	schools := make([]g.Node, 0, len(content.Schools))
	for i, e := range content.Schools {
		schools = append(schools, Div(
			Class("reveal relative pl-12 mb-8"),
			reveal(i*100),
			Div(
				Class("absolute left-0 flex items-center justify-center w-8 h-8 rounded-full bg-gradient-to-r from-blue-500 to-purple-600 text-white"),
				Icon(e.Icon, "w-4 h-4"),
			),
			Card("overflow-hidden",
				H3(Class("text-xl font-bold text-white"), g.Text(e.Degree)),
				Div(Class("text-blue-400"), g.Text(e.Institution)),
				Div(
					Class("flex justify-between text-sm text-gray-400 mt-2"),
					Span(g.Text(e.Location)),
					Span(g.Text(e.Period)),
				),
			),
		))
	}

	return SectionShell(sections.Education,
		SectionHeading("Education"),
		Div(
			Class("relative max-w-3xl mx-auto"),
			Div(Class("absolute left-4 top-0 bottom-0 w-0.5 bg-gradient-to-b from-blue-500 to-purple-600")),
			g.Group(schools),
		),
	)
}

func AwardsSection() g.Node {
	awards := make([]g.Node, 0, len(content.Awards))
	for i, a := range content.Awards {
		awards = append(awards, Div(
			Class("reveal"),
			reveal(i*100),
			Div(
				Class(cardClass+" h-full p-6 flex gap-4"),
				Div(Class("text-blue-400 shrink-0"), Icon("lucide:award", "w-10 h-10")),
				Div(
					H3(Class("text-xl font-bold text-white mb-1"), g.Text(a.Title)),
					Div(Class("text-sm text-blue-400 mb-3"), g.Text(a.Date)),
					P(Class("text-gray-300"), g.Text(a.Description)),
				),
			),
		))
	}

	return SectionShell(sections.Awards,
		SectionHeading("Awards & Certifications"),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-6"),
			g.Group(awards),
		),
	)
}
