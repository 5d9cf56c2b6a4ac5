package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shazarali/portfolio/internal/content"
	"github.com/shazarali/portfolio/internal/sections"
)

func Hero() g.Node {
	return Section(
		ID(string(sections.Home)),
		g.Attr("data-section", string(sections.Home)),
		Class("min-h-screen flex items-center justify-center relative pt-16"),

		Div(
			Class("container mx-auto px-4 py-20 flex flex-col md:flex-row items-center justify-between z-10"),
			Div(
				Class("text-center md:text-left max-w-xl"),
				H1(
					Class("text-5xl md:text-7xl font-bold mb-4 animate-rise bg-clip-text text-transparent bg-gradient-to-r from-blue-400 via-purple-500 to-blue-400"),
					Style("animation-delay: 200ms"),
					g.Text(content.Name),
				),
				Div(
					Class("text-xl md:text-2xl text-gray-300 mb-6 animate-rise"),
					Style("animation-delay: 400ms"),
					g.Text(content.Headline),
				),
				Div(
					Class("flex flex-wrap gap-4 justify-center md:justify-start animate-rise"),
					Style("animation-delay: 600ms"),
					Button(
						Type("button"),
						g.Attr("data-target", string(sections.About)),
						Class("group inline-flex items-center rounded-md px-6 py-3 bg-gradient-to-r from-blue-600 to-purple-600 hover:from-blue-700 hover:to-purple-700 text-white"),
						g.Text("Explore My Work"),
						Icon("lucide:arrow-down", "ml-2 h-5 w-5 group-hover:translate-y-1 transition-transform"),
					),
				),
			),
			Div(
				Class("mt-12 md:mt-0 relative animate-pop"),
				Style("animation-delay: 300ms"),
				Div(Class("absolute inset-0 rounded-full bg-gradient-to-r from-blue-500 to-purple-600 blur-xl opacity-30")),
				Div(
					Class("relative w-64 h-64 md:w-80 md:h-80 rounded-full overflow-hidden border-4 border-white/10"),
					Img(
						Src(content.ProfileImageURL),
						Alt(content.Name),
						g.Attr("width", "320"),
						g.Attr("height", "320"),
						Class("object-cover w-full h-full"),
					),
				),
			),
		),

		Div(
			Class("absolute bottom-10 left-1/2 -translate-x-1/2 animate-bounce"),
			Icon("lucide:arrow-down", "h-6 w-6 text-blue-400"),
		),
	)
}
