package scrollrouter

import (
	"math"
	"time"
)

// Rect is a section's bounding box relative to the top of the viewport.
// Negative Top means the section starts above the visible area.
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the viewport-relative bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Degenerate reports whether the rect cannot take part in activation:
// zero or negative height, or coordinates that are not finite.
func (r Rect) Degenerate() bool {
	return r.Height <= 0 ||
		math.IsNaN(r.Top) || math.IsInf(r.Top, 0) ||
		math.IsNaN(r.Height) || math.IsInf(r.Height, 0)
}

// Handle is an opaque reference to a mounted section. Handles are used as
// map keys, so implementations must be comparable; pointers are typical.
// Bounds is read from live layout on every call.
type Handle interface {
	Bounds() Rect
}

// Viewport is the scrolling surface the sections live in.
type Viewport interface {
	// ScrollY returns the current vertical scroll offset.
	ScrollY() float64
	// ScrollTo brings h to the top of the viewport. A zero duration jumps
	// without animation.
	ScrollTo(h Handle, duration time.Duration)
}

// ScrollSource delivers scroll and resize notifications.
type ScrollSource interface {
	// Listen registers fn and returns a function that removes it.
	Listen(fn func()) (remove func())
}

// Threshold positions the activation line below the top of the viewport.
type Threshold struct {
	// Offset is the distance from the top of the viewport at which a
	// section's top edge counts as crossed, typically the height of a fixed
	// navigation bar.
	Offset float64
	// UpwardLead moves the line up by this much while scrolling up, so the
	// previous section takes over slightly earlier.
	UpwardLead float64
}

func (t Threshold) line(preferDownward bool) float64 {
	if preferDownward {
		return t.Offset
	}
	return t.Offset - t.UpwardLead
}

// ResolveActive picks the active section: the lowest section whose top edge
// is at or above the activation line for the given direction. It returns nil
// when no section qualifies, for example when the viewport is above every
// section. Degenerate geometry never qualifies.
func ResolveActive(tracked []Handle, preferDownward bool, threshold Threshold) Handle {
	line := threshold.line(preferDownward)

	var (
		active Handle
		top    float64
	)
	for _, h := range tracked {
		if h == nil {
			continue
		}
		b := h.Bounds()
		if b.Degenerate() || b.Top > line {
			continue
		}
		if active == nil || b.Top >= top {
			active, top = h, b.Top
		}
	}
	return active
}
