package scrollrouter

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrUnknownRoute indicates navigation to a route that no mounted section
	// is bound to. This is a wiring error between navigation links and
	// content, not a transient condition.
	ErrUnknownRoute = errors.New("route is not tracked")

	// ErrAlreadyMounted indicates Mount was called on a router that already
	// has a scroll listener attached.
	ErrAlreadyMounted = errors.New("router already mounted")

	// ErrNotMounted indicates Unmount was called on a router with no
	// scroll listener attached.
	ErrNotMounted = errors.New("router not mounted")
)

// RouteError reports a navigation failure for a specific route.
type RouteError struct {
	Op    string // Operation that failed (e.g., "link_click")
	Route string // Route the operation targeted
	Err   error  // Underlying error
}

func (e *RouteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scrollrouter: %s %q: %v", e.Op, e.Route, e.Err)
	}
	return fmt.Sprintf("scrollrouter: %s %q", e.Op, e.Route)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// NewRouteError creates a new route error.
func NewRouteError(op, route string, err error) *RouteError {
	return &RouteError{Op: op, Route: route, Err: err}
}

// IsUnknownRoute checks if an error was caused by navigating to an untracked route.
func IsUnknownRoute(err error) bool {
	return errors.Is(err, ErrUnknownRoute)
}

// IsRouteError checks if an error is a route error.
func IsRouteError(err error) bool {
	var routeErr *RouteError
	return errors.As(err, &routeErr)
}
