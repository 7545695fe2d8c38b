// Package history models the address bar of a long-scrolling page.
//
// Navigation changes reach the address bar in two ways, and the difference
// matters for the back button:
//
//	h := history.NewMemory("/intro")
//
//	// A link click creates a new back-stack entry.
//	h.PushState("/accounts")
//
//	// Scroll-driven changes overwrite the current entry.
//	h.ReplaceState("/accounts/list?limit=10")
//
//	h.Back() // returns to "/intro"
//
// # Locations
//
// Location splits the current URL into a path and a query string the way a
// browser does (Search keeps its leading "?"), so callers can carry query
// parameters across section changes without parsing routes themselves.
package history
