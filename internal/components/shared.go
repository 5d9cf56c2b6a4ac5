package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shazarali/portfolio/internal/sections"
)

const (
	gradientText = "bg-clip-text text-transparent bg-gradient-to-r from-blue-400 to-purple-600"
	cardClass    = "rounded-xl bg-gray-900/50 backdrop-blur-sm border border-white/10 hover:border-blue-500/30 transition-all hover:shadow-lg hover:shadow-blue-500/10"
)

// Icon renders an iconify glyph, e.g. Icon("lucide:award", "w-6 h-6").
func Icon(name, class string) g.Node {
	return Span(
		Class("iconify inline-block "+class),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// SectionShell wraps the body of one navigable section with its anchor.
func SectionShell(id sections.ID, children ...g.Node) g.Node {
	return Section(
		ID(string(id)),
		g.Attr("data-section", string(id)),
		Class("min-h-screen flex items-center justify-center py-20 relative"),
		Div(
			Class("container mx-auto px-4"),
			g.Group(children),
		),
	)
}

func SectionHeading(title string) g.Node {
	return Div(
		Class("text-center mb-16 reveal"),
		g.Attr("data-reveal", ""),
		H2(Class("text-3xl md:text-5xl font-bold mb-4 "+gradientText), g.Text(title)),
		Div(Class("w-20 h-1 bg-gradient-to-r from-blue-500 to-purple-600 mx-auto")),
	)
}

func Card(class string, children ...g.Node) g.Node {
	return Div(
		Class(cardClass+" "+class),
		Div(Class("p-6"), g.Group(children)),
	)
}

// reveal marks a node to fade in when scrolled into view. delay staggers
// items of a list.
func reveal(delay int) g.Node {
	return g.Group([]g.Node{
		g.Attr("data-reveal", ""),
		Style(fmt.Sprintf("transition-delay: %dms", delay)),
	})
}

func bullets(items []string) g.Node {
	return Ul(
		Class("space-y-2 text-gray-300"),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(
				Class("flex items-start"),
				Span(Class("text-blue-400 mr-2"), g.Text("•")),
				Span(g.Text(item)),
			)
		})),
	)
}
