package components

import (
	stdhtml "html"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazarali/portfolio/internal/content"
	"github.com/shazarali/portfolio/internal/sections"
	"github.com/shazarali/portfolio/internal/theme"
)

func render(t *testing.T, cfg HomeConfig) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Home(cfg).Render(&b))
	return b.String()
}

func TestHomeRendersSectionsInOrder(t *testing.T) {
	html := render(t, HomeConfig{Year: 2026})

	last := -1
	for _, id := range sections.Order {
		i := strings.Index(html, `<section id="`+string(id)+`"`)
		require.NotEqual(t, -1, i, "missing section %s", id)
		assert.Greater(t, i, last, "section %s out of order", id)
		last = i
	}
	assert.Greater(t, strings.Index(html, "<footer"), last)
}

func TestHomeHighlightsActiveSection(t *testing.T) {
	html := render(t, HomeConfig{})
	assert.Regexp(t, `data-nav="home"[^>]*aria-current="true"`, html)
	assert.NotRegexp(t, `data-nav="about"[^>]*aria-current`, html)

	html = render(t, HomeConfig{Active: sections.Skills})
	assert.Regexp(t, `data-nav="skills"[^>]*aria-current="true"`, html)
	assert.NotRegexp(t, `data-nav="home"[^>]*aria-current`, html)
	assert.Contains(t, html, `data-active="skills"`)
}

func TestHomeNavigationMatchesOrder(t *testing.T) {
	html := render(t, HomeConfig{})
	matches := regexp.MustCompile(`data-nav="([a-z]+)"`).FindAllStringSubmatch(html, -1)
	require.Len(t, matches, len(sections.Order))
	for i, m := range matches {
		assert.Equal(t, string(sections.Order[i]), m[1])
	}
	assert.Contains(t, html, `>Home</button>`)
}

func TestHomeCarriesScrollSettings(t *testing.T) {
	html := render(t, HomeConfig{})
	assert.Contains(t, html, `data-sections="home,about,experience,skills,education,awards"`)
	assert.Contains(t, html, `data-scroll-ms="600"`)
	assert.Contains(t, html, `data-lookahead="100"`)
	assert.Contains(t, html, `src="/static/js/scrollspy.js"`)
}

func TestLayoutMetadata(t *testing.T) {
	html := render(t, HomeConfig{Meta: PageMeta{
		CanonicalURL:       "https://shazarali.com/",
		GoogleVerification: "verify-token",
	}})

	assert.Contains(t, html, "<title>"+stdhtml.EscapeString(content.PageTitle)+"</title>")
	assert.Contains(t, html, `<meta name="google-site-verification" content="verify-token">`)
	assert.Contains(t, html, `<link rel="canonical" href="https://shazarali.com/">`)
	assert.Contains(t, html, `@keyframes float`)
	assert.Contains(t, html, `<html lang="en" class="dark"`)

	bare := render(t, HomeConfig{})
	assert.NotContains(t, bare, "google-site-verification")
	assert.NotContains(t, bare, `rel="canonical"`)
}

func TestLayoutThemeAttribute(t *testing.T) {
	html := render(t, HomeConfig{Theme: theme.Theme{Name: "night", Attribute: "data-theme", ColorScheme: "dark"}})
	assert.Contains(t, html, `data-theme="night"`)
}

func TestHomeStaticContent(t *testing.T) {
	html := render(t, HomeConfig{Year: 2026})
	for _, job := range content.Jobs {
		assert.Contains(t, html, job.Period)
	}
	assert.Contains(t, html, "Skills &amp; Expertise")
	assert.Contains(t, html, content.ContactInfo.Email)
	assert.Contains(t, html, "© 2026 Shazar Ali. All rights reserved.")
	assert.Contains(t, html, `href="/out/linkedin"`)
	assert.Equal(t, len(content.Blobs), strings.Count(html, "animation: float "))
}
