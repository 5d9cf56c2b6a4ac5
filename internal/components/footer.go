package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shazarali/portfolio/internal/content"
)

func PageFooter(year int) g.Node {
	contact := content.ContactInfo

	return Footer(
		Class("py-10 border-t border-white/10 bg-black/30 backdrop-blur-md"),
		Div(
			Class("container mx-auto px-4"),
			Div(
				Class("flex flex-col md:flex-row justify-between items-center"),
				Div(
					Class("mb-6 md:mb-0"),
					Div(Class("text-2xl font-bold "+gradientText), g.Text(content.Name)),
					P(Class("text-gray-400"), g.Text(content.Headline)),
				),
				Div(
					Class("flex flex-col items-center md:items-end"),
					linkedInButton(),
					Div(
						Class("text-sm text-gray-300 mt-2"),
						Span(Class("text-blue-400"), g.Text("Phone:")), g.Text(" "),
						Span(Class("text-gray-300"), g.Text(contact.Phone)),
					),
					Div(
						Class("text-sm text-gray-300"),
						Span(Class("text-blue-400"), g.Text("Email:")), g.Text(" "),
						Span(Class("text-gray-300"), g.Text(contact.Email)),
					),
				),
			),
			Div(
				Class("mt-8 pt-8 border-t border-white/10 text-center text-gray-500 text-sm"),
				g.Textf("© %d %s. All rights reserved.", year, content.Name),
			),
		),
	)
}
