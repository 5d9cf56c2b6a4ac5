package main

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dop251/goja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazarali/portfolio/internal/components"
	"github.com/shazarali/portfolio/internal/sections"
)

// browser runs the embedded scroll script against the stub DOM in
// testdata/dom.js, configured from the page the server renders.
type browser struct {
	t  *testing.T
	vm *goja.Runtime
}

type span struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

type mountedPage struct {
	Sections      string `json:"sections"`
	Lookahead     string `json:"lookahead"`
	ScrollMs      string `json:"scrollMs"`
	Active        string `json:"active"`
	ActiveClass   string `json:"activeClass"`
	InactiveClass string `json:"inactiveClass"`
	Spans         []span `json:"spans"`
}

func openPage(t *testing.T, layout sections.Layout, active sections.ID) *browser {
	t.Helper()

	var buf strings.Builder
	require.NoError(t, components.Home(components.HomeConfig{Active: active, Year: 2026}).Render(&buf))
	html := buf.String()
	attr := func(name string) string {
		m := regexp.MustCompile(name + `="([^"]*)"`).FindStringSubmatch(html)
		require.NotNil(t, m, name)
		return m[1]
	}

	page := mountedPage{
		Sections:      attr("data-sections"),
		Lookahead:     attr("data-lookahead"),
		ScrollMs:      attr("data-scroll-ms"),
		Active:        attr("data-active"),
		ActiveClass:   attr("data-active-class"),
		InactiveClass: attr("data-inactive-class"),
	}
	for _, id := range sections.Order {
		if s, ok := layout[id]; ok {
			page.Spans = append(page.Spans, span{ID: string(id), Top: s.Top, Height: s.Height})
		}
	}
	encoded, err := json.Marshal(page)
	require.NoError(t, err)

	dom, err := os.ReadFile("testdata/dom.js")
	require.NoError(t, err)
	script, err := staticFS.ReadFile("static/js/scrollspy.js")
	require.NoError(t, err)

	b := &browser{t: t, vm: goja.New()}
	b.run(string(dom))
	b.run("mount(" + string(encoded) + ")")
	b.run(string(script))
	return b
}

func (b *browser) run(src string) goja.Value {
	b.t.Helper()
	v, err := b.vm.RunString(src)
	require.NoError(b.t, err)
	return v
}

func (b *browser) scroll(offset float64) {
	b.run(fmt.Sprintf("window.scrollTo(0, %v)", offset))
}

func (b *browser) scrollY() float64 {
	return b.run("window.scrollY").ToFloat()
}

func (b *browser) active() string {
	return b.run("activeNav()").String()
}

func (b *browser) listeners(event string) int64 {
	return b.run(fmt.Sprintf("window.listenerCount(%q)", event)).ToInteger()
}

// frame runs one animation frame at timestamp ms and reports whether
// another frame was requested.
func (b *browser) frame(ms float64) bool {
	return b.run(fmt.Sprintf("window.runFrame(%v)", ms)).ToInteger() > 0
}

func TestScrollSpyFollowsResolve(t *testing.T) {
	layouts := map[string]sections.Layout{
		"stacked":    sections.Stack(900, 800, 1200, 1000, 700, 900),
		"short":      sections.Stack(900, 800, 120, 1000, 700, 900),
		"unmeasured": sections.Stack(900, 800, 1200, 1000, 700, 900),
	}
	delete(layouts["unmeasured"], sections.Skills)

	offsets := []float64{0, 799.5, 800, 1750, 2799, 2800, -400, 3900, 9000, 4600, 200}

	for name, layout := range layouts {
		t.Run(name, func(t *testing.T) {
			b := openPage(t, layout, sections.Home)
			require.Equal(t, "home", b.active())

			want := sections.Home
			for _, offset := range offsets {
				want = sections.Resolve(want, offset, layout)
				b.scroll(offset)
				assert.Equal(t, string(want), b.active(), "offset %v", offset)
			}
		})
	}
}

func TestScrollSpyMovesHighlightClasses(t *testing.T) {
	b := openPage(t, sections.Stack(900, 800, 1200, 1000, 700, 900), sections.Home)
	b.scroll(1000)

	assert.Equal(t, "about", b.active())
	assert.True(t, b.run(`navButton("about").classList.contains("text-blue-400")`).ToBoolean())
	assert.False(t, b.run(`navButton("about").classList.contains("text-gray-400")`).ToBoolean())
	assert.True(t, b.run(`navButton("home").classList.contains("text-gray-400")`).ToBoolean())
	assert.False(t, b.run(`navButton("home").classList.contains("text-blue-400")`).ToBoolean())
}

func TestScrollSpySurvivesBackForwardCache(t *testing.T) {
	b := openPage(t, sections.Stack(900, 800, 1200, 1000, 700, 900), sections.Home)
	require.EqualValues(t, 1, b.listeners("scroll"))

	b.run(`window.dispatch("pagehide", { persisted: true })`)
	// Scrolled while frozen; no scroll event reaches the page.
	b.run(`window.scrollY = 3000`)
	b.run(`window.dispatch("pageshow", { persisted: true })`)

	assert.EqualValues(t, 1, b.listeners("scroll"))
	assert.Equal(t, "skills", b.active(), "highlight resynced on restore")

	b.scroll(1800)
	assert.Equal(t, "experience", b.active())
}

func TestScrollSpyDetachesOnUnload(t *testing.T) {
	b := openPage(t, sections.Stack(900, 800, 1200, 1000, 700, 900), sections.Home)

	b.run(`window.dispatch("pagehide", { persisted: false })`)
	assert.EqualValues(t, 0, b.listeners("scroll"))

	b.scroll(1800)
	assert.Equal(t, "home", b.active())
}

func TestScrollSpyNavigationMatchesSmoothScroll(t *testing.T) {
	layout := sections.Stack(900, 800, 1200, 1000, 700, 900)
	b := openPage(t, layout, sections.Home)
	b.scroll(250)

	to, ok := sections.Target(sections.Education, layout)
	require.True(t, ok)
	want := sections.SmoothScroll{From: 250, To: to, Duration: sections.DefaultScrollDuration}

	b.run(`navButton("education").click()`)

	const start = 1000.0
	for _, elapsed := range []time.Duration{0, 100 * time.Millisecond, 300 * time.Millisecond, 450 * time.Millisecond} {
		require.True(t, b.frame(start+float64(elapsed.Milliseconds())), elapsed)
		assert.InDelta(t, want.At(elapsed), b.scrollY(), 1e-6, elapsed)
	}

	assert.False(t, b.frame(start+float64(sections.DefaultScrollDuration.Milliseconds())))
	assert.Equal(t, to, b.scrollY())
	assert.Equal(t, "education", b.active())
}

func TestScrollSpyScrollsToRequestedSection(t *testing.T) {
	layout := sections.Stack(900, 800, 1200, 1000, 700, 900)
	b := openPage(t, layout, sections.Skills)
	assert.Equal(t, "skills", b.active())

	ms := 0.0
	for b.frame(ms) {
		ms += 16
	}
	assert.Equal(t, layout[sections.Skills].Top, b.scrollY())
	assert.Equal(t, "skills", b.active())
}
