package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/shazarali/portfolio/internal/content"
	"github.com/shazarali/portfolio/internal/sections"
)

const (
	navLinkClass     = "text-sm uppercase tracking-wider hover:text-blue-400 transition-colors"
	navActiveClass   = "text-blue-400 font-medium"
	navInactiveClass = "text-gray-400"
)

// Navbar is the fixed header. One control per section in sections.Order;
// active is highlighted and the scroll script moves the highlight from there.
func Navbar(active sections.ID) g.Node {
	return Header(
		Class("fixed top-0 left-0 right-0 z-50 bg-black/20 backdrop-blur-md border-b border-white/10"),
		Div(
			Class("container mx-auto px-4 py-4 flex justify-between items-center"),
			Div(
				Class("text-xl font-bold animate-slide-in "+gradientText),
				g.Text(content.Name),
			),
			Nav(
				Class("hidden md:block"),
				g.Attr("data-active-class", navActiveClass),
				g.Attr("data-inactive-class", navInactiveClass),
				Ul(
					Class("flex space-x-6"),
					g.Group(navItems(active)),
				),
			),
			linkedInButton(),
		),
	)
}

func navItems(active sections.ID) []g.Node {
	items := make([]g.Node, 0, len(sections.Order))
	for i, id := range sections.Order {
		isActive := id == active
		items = append(items, Li(
			Class("animate-drop-in"),
			Style(fmt.Sprintf("animation-delay: %dms", i*100)),
			Button(
				Type("button"),
				g.Attr("data-nav", string(id)),
				g.Attr("data-target", string(id)),
				c.Classes{
					navLinkClass:     true,
					navActiveClass:   isActive,
					navInactiveClass: !isActive,
				},
				g.If(isActive, g.Attr("aria-current", "true")),
				g.Text(sections.Label(id)),
			),
		))
	}
	return items
}

func linkedInButton() g.Node {
	return A(
		Href("/out/linkedin"),
		g.Attr("target", "_blank"),
		Rel("noopener noreferrer"),
		Class("inline-flex items-center justify-center h-10 w-10 rounded-full text-blue-400 hover:text-blue-300 hover:bg-blue-950/30"),
		Icon("lucide:linkedin", "h-5 w-5"),
		Span(Class("sr-only"), g.Text("LinkedIn")),
	)
}

// Background is the fixed layer of floating gradient blobs.
func Background() g.Node {
	return Div(
		Class("fixed inset-0 -z-10 overflow-hidden"),
		g.Attr("aria-hidden", "true"),
		Div(
			Class("absolute -inset-[10px] opacity-50"),
			g.Group(g.Map(content.Blobs, func(b content.Blob) g.Node {
				return Div(
					Class("absolute rounded-full blur-3xl"),
					Style(fmt.Sprintf(
						"width: %dpx; height: %dpx; left: %d%%; top: %d%%; background: radial-gradient(circle, rgba(%s, 0.4) 0%%, rgba(0, 0, 0, 0) 70%%); animation: float %ds ease-in-out infinite; animation-delay: %ds",
						b.Size, b.Size, b.Left, b.Top, b.RGB, b.Duration, b.Delay,
					)),
				)
			})),
		),
	)
}

// ScrollTopButton floats in the corner and smooth-scrolls back to the first
// section.
func ScrollTopButton() g.Node {
	return Button(
		Type("button"),
		g.Attr("data-target", string(sections.Order[0])),
		g.Attr("aria-label", "Back to top"),
		Class("fixed bottom-6 right-6 p-3 rounded-full bg-blue-600 text-white shadow-lg shadow-blue-600/20 hover:bg-blue-700 transition-colors z-50"),
		Icon("lucide:arrow-up", "h-5 w-5"),
	)
}
