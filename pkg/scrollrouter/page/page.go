// Package page is a layout model of a long-scrolling document: sections at
// fixed document coordinates inside a viewport with a scroll offset. It
// provides the Handle, Viewport and ScrollSource collaborators a Router
// needs, and platform adapters drive it from device input.
package page

import (
	"math"
	"sync"
	"time"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter"
)

var (
	_ scrollrouter.Viewport     = (*Page)(nil)
	_ scrollrouter.ScrollSource = (*Page)(nil)
	_ scrollrouter.Handle       = (*Section)(nil)
)

// Page holds the viewport scroll offset and the sections laid out in it.
// Listeners are notified after every scroll or resize, outside the lock, so
// they may read the page.
type Page struct {
	mu             sync.RWMutex
	scrollY        float64
	viewportHeight float64
	sections       []*Section
	listeners      map[int]func()
	order          []int
	nextID         int
}

// Section is a block of content at absolute document coordinates.
type Section struct {
	page   *Page
	top    float64
	height float64
}

// New creates an empty page with the given viewport height.
func New(viewportHeight float64) *Page {
	return &Page{
		viewportHeight: viewportHeight,
		listeners:      make(map[int]func()),
	}
}

// AddSection places a section at document offset top.
func (p *Page) AddSection(top, height float64) *Section {
	s := &Section{page: p, top: top, height: height}

	p.mu.Lock()
	p.sections = append(p.sections, s)
	p.mu.Unlock()
	return s
}

// RemoveSection takes s out of the layout. Its Bounds keep reporting its
// last position.
func (p *Page) RemoveSection(s *Section) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, cur := range p.sections {
		if cur == s {
			p.sections = append(p.sections[:i], p.sections[i+1:]...)
			return
		}
	}
}

// Sections returns the sections in insertion order.
func (p *Page) Sections() []*Section {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*Section, len(p.sections))
	copy(out, p.sections)
	return out
}

// ScrollY returns the current scroll offset.
func (p *Page) ScrollY() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.scrollY
}

// ViewportHeight returns the visible height.
func (p *Page) ViewportHeight() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.viewportHeight
}

// ContentHeight returns the bottom edge of the lowest section.
func (p *Page) ContentHeight() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.contentHeight()
}

func (p *Page) contentHeight() float64 {
	var bottom float64
	for _, s := range p.sections {
		bottom = math.Max(bottom, s.top+s.height)
	}
	return bottom
}

// MaxScroll returns the largest reachable scroll offset.
func (p *Page) MaxScroll() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.maxScroll()
}

func (p *Page) maxScroll() float64 {
	return math.Max(0, p.contentHeight()-p.viewportHeight)
}

// SetScrollY moves the viewport to y, clamped to the scrollable range, and
// notifies listeners when the offset changed.
func (p *Page) SetScrollY(y float64) {
	if math.IsNaN(y) {
		return
	}

	p.mu.Lock()
	y = math.Min(math.Max(y, 0), p.maxScroll())
	changed := y != p.scrollY
	p.scrollY = y
	p.mu.Unlock()

	if changed {
		p.notify()
	}
}

// ScrollBy moves the viewport by dy.
func (p *Page) ScrollBy(dy float64) {
	p.SetScrollY(p.ScrollY() + dy)
}

// ScrollTo brings h to the top of the viewport. Page has no animation, so
// every duration results in an immediate jump.
func (p *Page) ScrollTo(h scrollrouter.Handle, _ time.Duration) {
	if h == nil {
		return
	}
	if s, ok := h.(*Section); ok && s.page == p {
		p.SetScrollY(s.Top())
		return
	}
	b := h.Bounds()
	if b.Degenerate() {
		return
	}
	p.ScrollBy(b.Top)
}

// Resize changes the viewport height and notifies listeners.
func (p *Page) Resize(viewportHeight float64) {
	p.mu.Lock()
	p.viewportHeight = viewportHeight
	p.scrollY = math.Min(p.scrollY, p.maxScroll())
	p.mu.Unlock()

	p.notify()
}

// Listen registers fn for scroll and resize notifications.
func (p *Page) Listen(fn func()) (remove func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.order = append(p.order, id)
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		delete(p.listeners, id)
		for i, cur := range p.order {
			if cur == id {
				p.order = append(p.order[:i], p.order[i+1:]...)
				break
			}
		}
	}
}

// Listeners returns the number of registered listeners.
func (p *Page) Listeners() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.listeners)
}

func (p *Page) notify() {
	p.mu.RLock()
	fns := make([]func(), 0, len(p.order))
	for _, id := range p.order {
		fns = append(fns, p.listeners[id])
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}

// Bounds returns the section's position relative to the viewport.
func (s *Section) Bounds() scrollrouter.Rect {
	s.page.mu.RLock()
	defer s.page.mu.RUnlock()
	return scrollrouter.Rect{Top: s.top - s.page.scrollY, Height: s.height}
}

// Top returns the section's document offset.
func (s *Section) Top() float64 {
	s.page.mu.RLock()
	defer s.page.mu.RUnlock()
	return s.top
}

// Height returns the section's height.
func (s *Section) Height() float64 {
	s.page.mu.RLock()
	defer s.page.mu.RUnlock()
	return s.height
}

// SetLayout moves or resizes the section. Listeners are not notified;
// callers that reflow content report it through Page.Resize or the router.
func (s *Section) SetLayout(top, height float64) {
	s.page.mu.Lock()
	defer s.page.mu.Unlock()

	s.top = top
	s.height = height
}
