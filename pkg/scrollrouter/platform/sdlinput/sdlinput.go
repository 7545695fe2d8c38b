// Package sdlinput drives a page.Page from SDL2 events: mouse wheel,
// keyboard paging and window resizes. Pair it with a scrollrouter.Router
// mounted on the same page.
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/constants"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/page"
)

// Options configures an Adapter.
type Options struct {
	Step     float64 // Distance per wheel notch or arrow key; defaults to constants.DefaultScrollStep
	OnResize func()  // Called after the viewport is resized, typically Router.Reflow
}

// Adapter translates SDL events into page scrolling.
type Adapter struct {
	page     *page.Page
	step     float64
	onResize func()
}

// New creates an Adapter for p.
func New(p *page.Page, opts Options) *Adapter {
	step := opts.Step
	if step <= 0 {
		step = constants.DefaultScrollStep
	}
	return &Adapter{
		page:     p,
		step:     step,
		onResize: opts.OnResize,
	}
}

// Pump waits up to timeoutMS for one event and applies it. It returns false
// once the window is asked to quit.
func (a *Adapter) Pump(timeoutMS int) bool {
	event := sdl.WaitEventTimeout(timeoutMS)
	if event == nil {
		return true
	}
	if _, ok := event.(*sdl.QuitEvent); ok {
		return false
	}
	a.HandleEvent(event)
	return true
}

// HandleEvent applies event to the page and reports whether it was used.
func (a *Adapter) HandleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		a.page.ScrollBy(-dy * a.step)
		return true
	case *sdl.KeyboardEvent:
		if e.State != sdl.PRESSED {
			return false
		}
		return a.handleKey(e.Keysym.Sym)
	case *sdl.WindowEvent:
		if e.Event != sdl.WINDOWEVENT_RESIZED && e.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
			return false
		}
		a.page.Resize(float64(e.Data2))
		if a.onResize != nil {
			a.onResize()
		}
		return true
	}
	return false
}

func (a *Adapter) handleKey(sym sdl.Keycode) bool {
	switch sym {
	case sdl.K_DOWN:
		a.page.ScrollBy(a.step)
	case sdl.K_UP:
		a.page.ScrollBy(-a.step)
	case sdl.K_PAGEDOWN, sdl.K_SPACE:
		a.page.ScrollBy(a.page.ViewportHeight())
	case sdl.K_PAGEUP:
		a.page.ScrollBy(-a.page.ViewportHeight())
	case sdl.K_HOME:
		a.page.SetScrollY(0)
	case sdl.K_END:
		a.page.SetScrollY(a.page.MaxScroll())
	default:
		return false
	}
	return true
}
