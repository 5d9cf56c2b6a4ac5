// Package sections tracks which portfolio section is in view and plans the
// smooth scroll used to navigate between them.
package sections

import "fmt"

// ID names one navigable section of the page.
type ID string

const (
	Home       ID = "home"
	About      ID = "about"
	Experience ID = "experience"
	Skills     ID = "skills"
	Education  ID = "education"
	Awards     ID = "awards"
)

// Order is the declaration order of the page. Resolve breaks ties by it and
// the navigation bar is generated from it.
var Order = []ID{Home, About, Experience, Skills, Education, Awards}

// Lookahead shifts the scroll offset forward so a section becomes active just
// before its top edge passes under the fixed navigation bar.
const Lookahead = 100.0

// Label is the navigation text for a section.
func Label(id ID) string {
	if id == Home {
		return "Home"
	}
	return string(id)
}

// Parse returns the section named by s.
func Parse(s string) (ID, error) {
	for _, id := range Order {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", s)
}

// Span is the vertical extent of a rendered section in document coordinates.
type Span struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether y lies in [Top, Top+Height).
func (s Span) Contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Layout maps each measured section to its span.
type Layout map[ID]Span

// Stack lays sections out back to back in Order starting at zero, using the
// given heights. Extra heights are ignored.
func Stack(heights ...float64) Layout {
	layout := make(Layout, len(Order))
	top := 0.0
	for i, id := range Order {
		if i >= len(heights) {
			break
		}
		layout[id] = Span{Top: top, Height: heights[i]}
		top += heights[i]
	}
	return layout
}

// Resolve returns the first section in Order whose span contains
// offset+Lookahead. If none does, prev is kept.
func Resolve(prev ID, offset float64, layout Layout) ID {
	y := offset + Lookahead
	for _, id := range Order {
		span, ok := layout[id]
		if !ok {
			continue
		}
		if span.Contains(y) {
			return id
		}
	}
	return prev
}
