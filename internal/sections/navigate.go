package sections

import (
	"math"
	"time"
)

// DefaultScrollDuration is the length of the animated scroll to a section.
// The page hands it to the browser script as data-scroll-ms.
const DefaultScrollDuration = 600 * time.Millisecond

// Target returns the scroll offset that aligns the top of id with the top of
// the viewport. ok is false when the section has not been measured.
func Target(id ID, layout Layout) (offset float64, ok bool) {
	span, ok := layout[id]
	if !ok {
		return 0, false
	}
	return math.Max(span.Top, 0), true
}

// SmoothScroll is an animated scroll from one offset to another, eased
// in-out cubic. The browser script animates with the same curve.
type SmoothScroll struct {
	From     float64
	To       float64
	Duration time.Duration
}

// At returns the scroll position after elapsed time.
func (s SmoothScroll) At(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return s.From
	}
	if s.Duration <= 0 || elapsed >= s.Duration {
		return s.To
	}
	p := easeInOutCubic(float64(elapsed) / float64(s.Duration))
	return s.From + (s.To-s.From)*p
}

func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}
