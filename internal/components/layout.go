package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shazarali/portfolio/internal/content"
	"github.com/shazarali/portfolio/internal/sections"
	"github.com/shazarali/portfolio/internal/theme"
)

// PageMeta is everything the document head says about the page.
type PageMeta struct {
	Title              string
	Description        string
	CanonicalURL       string
	GoogleVerification string
	Icon               string
	AppleIcon          string
	OGImage            string
	Generator          string
}

func (m PageMeta) withDefaults() PageMeta {
	if m.Title == "" {
		m.Title = content.PageTitle
	}
	if m.Description == "" {
		m.Description = content.PageDescription
	}
	if m.Icon == "" {
		m.Icon = "/static/images/favicon.svg"
	}
	if m.AppleIcon == "" {
		m.AppleIcon = m.Icon
	}
	if m.OGImage == "" {
		m.OGImage = content.ProfileImageURL
	}
	if m.Generator == "" {
		m.Generator = "gomponents"
	}
	return m
}

const floatKeyframes = `
@keyframes float {
  0% { transform: translateY(0px) translateX(0px); }
  50% { transform: translateY(-20px) translateX(10px); }
  100% { transform: translateY(0px) translateX(0px); }
}`

// Layout is the document shell: head metadata, fonts, the float animation and
// the theme wrapped around children. active is the section the script starts
// from.
func Layout(meta PageMeta, t theme.Theme, active sections.ID, children ...g.Node) g.Node {
	meta = meta.withDefaults()

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			themeAttr(t),
			Style("color-scheme: "+t.ColorScheme),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Meta(Name("description"), Content(meta.Description)),
				Meta(Name("generator"), Content(meta.Generator)),
				g.If(meta.GoogleVerification != "",
					Meta(Name("google-site-verification"), Content(meta.GoogleVerification)),
				),
				g.If(meta.CanonicalURL != "",
					Link(Rel("canonical"), Href(meta.CanonicalURL)),
				),

				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				Meta(g.Attr("property", "og:description"), Content(meta.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:image"), Content(meta.OGImage)),
				g.If(meta.CanonicalURL != "",
					Meta(g.Attr("property", "og:url"), Content(meta.CanonicalURL)),
				),

				Link(Rel("icon"), Href(meta.Icon)),
				Link(Rel("apple-touch-icon"), Href(meta.AppleIcon)),

				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("preconnect"), Href("https://fonts.gstatic.com"), g.Attr("crossorigin", "")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700&display=swap")),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				StyleEl(g.Raw(floatKeyframes)),
			),
			Body(
				Class("font-inter antialiased"),
				g.Attr("data-sections", sectionList()),
				g.Attr("data-lookahead", strconv.FormatFloat(sections.Lookahead, 'f', -1, 64)),
				g.Attr("data-scroll-ms", strconv.FormatInt(sections.DefaultScrollDuration.Milliseconds(), 10)),
				g.Attr("data-active", string(active)),
				g.Group(children),

				Script(Src("/static/js/scrollspy.js"), Defer()),
			),
		),
	})
}

func themeAttr(t theme.Theme) g.Node {
	if t.Attribute == "" || t.Attribute == "class" {
		return Class(t.Name)
	}
	return g.Attr(t.Attribute, t.Name)
}

func sectionList() string {
	ids := make([]string, len(sections.Order))
	for i, id := range sections.Order {
		ids[i] = string(id)
	}
	return strings.Join(ids, ",")
}
