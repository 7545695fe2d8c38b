package scrollrouter

import (
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/broadcast"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/constants"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/history"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/internal"
	"github.com/BrandonKowalski/scrollrouter/pkg/scrollrouter/schedule"
)

// Options configures a Router.
type Options struct {
	Viewport         Viewport        // Scrolling surface; required
	History          history.History // Address bar; defaults to an in-memory history at "/"
	Clock            schedule.Clock  // Timer source for throttling; defaults to the system clock
	Threshold        Threshold       // Activation line
	ThrottleInterval time.Duration   // Minimum spacing between evaluations
	MinScrollDelta   float64         // Movement required before re-evaluating
	InitialActive    string          // Route reported by Active before any section resolves
	Logger           *slog.Logger    // Defaults to the package logger
}

// DefaultOptions returns Options with the default tuning and no collaborators.
func DefaultOptions() Options {
	return Options{
		Threshold: Threshold{
			Offset:     constants.DefaultActivationOffset,
			UpwardLead: constants.DefaultUpwardLead,
		},
		ThrottleInterval: constants.DefaultThrottleInterval,
		MinScrollDelta:   constants.DefaultMinScrollDelta,
	}
}

// Router keeps the active section of a long-scrolling page in sync with the
// viewport, the address bar and navigation UI.
//
// Scroll-driven changes replace the current address-bar entry; link clicks
// push a new one. One Router should exist per page.
type Router struct {
	opts    Options
	logger  *slog.Logger
	channel *broadcast.Channel
	state   internal.ScrollState

	mu             sync.Mutex
	registry       *Registry
	active         Handle
	activeRoute    string
	initialPath    string
	deepLinked     bool
	throttle       *schedule.Throttle
	removeListener func()

	evaluating atomic.Bool
	pending    atomic.Bool
}

// New creates a Router. The initial address-bar path is read from
// opts.History once, for deep-link reconciliation in Track.
func New(opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}
	if opts.History == nil {
		opts.History = history.NewMemory("/")
	}
	if opts.Clock == nil {
		opts.Clock = schedule.SystemClock{}
	}
	if opts.Viewport == nil {
		logger.Warn("router created without a viewport; scroll position is fixed at 0")
		opts.Viewport = staticViewport{}
	}

	return &Router{
		opts:        opts,
		logger:      logger,
		channel:     broadcast.New(),
		registry:    NewRegistry(),
		activeRoute: opts.InitialActive,
		initialPath: opts.History.Location().Path,
	}
}

// Mount attaches the throttled scroll listener to src and runs one
// evaluation immediately. src may be nil when the caller forwards scroll
// events through OnScroll. The returned function tears the listener down.
func (r *Router) Mount(src ScrollSource) (teardown func(), err error) {
	r.mu.Lock()
	if r.throttle != nil {
		r.mu.Unlock()
		return nil, ErrAlreadyMounted
	}
	th := schedule.NewThrottle(r.opts.ThrottleInterval, r.opts.Clock, r.Evaluate)
	r.throttle = th
	r.mu.Unlock()

	remove := func() {}
	if src != nil {
		remove = src.Listen(th.Call)
	}

	r.mu.Lock()
	r.removeListener = remove
	r.mu.Unlock()

	r.Evaluate()

	return func() { _ = r.Unmount() }, nil
}

// Unmount removes the scroll listener and drops any pending evaluation.
func (r *Router) Unmount() error {
	r.mu.Lock()
	th, remove := r.throttle, r.removeListener
	r.throttle, r.removeListener = nil, nil
	r.mu.Unlock()

	if th == nil {
		return ErrNotMounted
	}
	th.Cancel()
	if remove != nil {
		remove()
	}
	return nil
}

// Mounted reports whether a scroll listener is attached.
func (r *Router) Mounted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.throttle != nil
}

// OnScroll requests a throttled evaluation. It does nothing while unmounted.
func (r *Router) OnScroll() {
	r.mu.Lock()
	th := r.throttle
	r.mu.Unlock()

	if th != nil {
		th.Call()
	}
}

// Reflow re-sorts the Tracked Set after a layout change, such as a resize,
// and requests an evaluation.
func (r *Router) Reflow() {
	r.mu.Lock()
	r.registry.Sort()
	r.mu.Unlock()

	r.OnScroll()
}

// Evaluate runs one scroll evaluation immediately. Evaluations never
// overlap: a call that arrives while another is running is folded into a
// rerun of the running one.
func (r *Router) Evaluate() {
	for r.evaluating.CompareAndSwap(false, true) {
		r.pending.Store(false)
		r.evaluate()
		r.evaluating.Store(false)
		if !r.pending.Load() {
			return
		}
	}
	r.pending.Store(true)
}

func (r *Router) evaluate() {
	r.mu.Lock()
	offset := r.opts.Viewport.ScrollY()
	if !r.state.Advance(offset, r.opts.MinScrollDelta) {
		r.mu.Unlock()
		r.logger.Debug("scroll below threshold", "offset", offset, "last", r.state.LastOffset())
		return
	}

	next := ResolveActive(r.registry.tracked, r.state.PreferDownward(), r.opts.Threshold)
	if next == nil || next == r.active {
		r.mu.Unlock()
		return
	}
	route, ok := r.registry.Route(next)
	if !ok {
		r.mu.Unlock()
		return
	}
	r.active, r.activeRoute = next, route
	url := route + r.opts.History.Location().Search
	r.mu.Unlock()

	r.logger.Debug("active section changed",
		"route", route,
		"offset", offset,
		"direction", r.state.Direction().String())

	r.channel.Emit(route)
	r.opts.History.ReplaceState(url)
}

// Track registers a mounted section. If route matches the address bar at
// load time, the first such registration scrolls the section into view and
// announces it, reconciling deep links with arbitrary mount order.
func (r *Router) Track(h Handle, route string) {
	if h == nil {
		return
	}

	r.mu.Lock()
	r.registry.Track(h, route)
	deepLink := !r.deepLinked && r.initialPath != "" && r.initialPath == route
	if deepLink {
		r.deepLinked = true
		r.active, r.activeRoute = h, route
	}
	r.mu.Unlock()

	if deepLink {
		r.logger.Debug("reconciling deep link", "route", route)
		r.channel.Emit(route)
		r.opts.Viewport.ScrollTo(h, 0)
	}
}

// Untrack removes a section. Untracking an unknown handle is a no-op. If h
// was active, the active route is kept until the next change so navigation
// UI does not flicker.
func (r *Router) Untrack(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registry.Untrack(h); !ok {
		return
	}
	if r.active == h {
		r.active = nil
	}
}

// OnLinkClick navigates to route: it announces the route, pushes a new
// address-bar entry, and jumps to the section without animation. The next
// evaluation prefers the downward direction so the jump is not misread as
// upward scrolling. A route without a tracked section returns an error
// wrapping ErrUnknownRoute.
func (r *Router) OnLinkClick(route string) error {
	r.mu.Lock()
	h, ok := r.registry.Handle(route)
	if !ok {
		r.mu.Unlock()
		err := NewRouteError("link_click", route, ErrUnknownRoute)
		r.logger.Error("link click on untracked route", "route", route, "error", err)
		return err
	}
	r.active, r.activeRoute = h, route
	r.mu.Unlock()

	r.state.SetNavClicked(true)
	r.channel.Emit(route)
	r.opts.History.PushState(route)
	r.opts.Viewport.ScrollTo(h, 0)
	return nil
}

// SetNavClicked forces (or cancels) the downward preference for the next
// evaluation.
func (r *Router) SetNavClicked(clicked bool) {
	r.state.SetNavClicked(clicked)
}

// Subscribe registers fn to receive every active-route change, click-driven
// and scroll-driven.
func (r *Router) Subscribe(fn broadcast.Listener) (unsubscribe func()) {
	return r.channel.Subscribe(fn)
}

// Active returns the active section and its route. The handle is nil until
// a section resolves or after the active section unmounts.
func (r *Router) Active() (Handle, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active, r.activeRoute
}

// IsScrollingDown reports the direction of the last qualifying scroll.
func (r *Router) IsScrollingDown() bool {
	return r.state.IsScrollingDown()
}

// Routes returns the tracked routes ordered by position.
func (r *Router) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registry.Routes()
}

// Tracked returns the Tracked Set ordered by position.
func (r *Router) Tracked() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registry.Tracked()
}

// Lookup returns the handle bound to route.
func (r *Router) Lookup(route string) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registry.Handle(route)
}

// RouteOf returns the route bound to h.
func (r *Router) RouteOf(h Handle) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registry.Route(h)
}

// Close unmounts the router and forgets every section and all scroll state.
func (r *Router) Close() {
	_ = r.Unmount()

	r.mu.Lock()
	r.registry.Clear()
	r.active = nil
	r.mu.Unlock()

	r.state.Reset()
}

type staticViewport struct{}

func (staticViewport) ScrollY() float64               { return 0 }
func (staticViewport) ScrollTo(Handle, time.Duration) {}
