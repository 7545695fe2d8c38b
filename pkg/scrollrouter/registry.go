package scrollrouter

import (
	"math"
	"sort"
)

// Registry keeps the route <-> handle bijection and the Tracked Set: the
// mounted handles ordered by ascending vertical position.
//
// Registry is not safe for concurrent use; Router serializes access.
type Registry struct {
	routes  map[Handle]string
	handles map[string]Handle
	tracked []Handle
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		routes:  make(map[Handle]string),
		handles: make(map[string]Handle),
	}
}

// Track binds h to route and re-sorts the Tracked Set. Any previous binding
// of h or of route is dropped first, so the mapping stays one-to-one.
func (r *Registry) Track(h Handle, route string) {
	if h == nil {
		return
	}

	if old, ok := r.routes[h]; ok && old != route {
		delete(r.handles, old)
	}
	if prev, ok := r.handles[route]; ok && prev != h {
		r.Untrack(prev)
	}

	_, known := r.routes[h]
	r.routes[h] = route
	r.handles[route] = h
	if !known {
		r.tracked = append(r.tracked, h)
	}
	r.Sort()
}

// Untrack removes h from both directions of the mapping and from the Tracked
// Set. It returns the route h was bound to. Untracking an unknown handle is a
// no-op.
func (r *Registry) Untrack(h Handle) (route string, ok bool) {
	route, ok = r.routes[h]
	if !ok {
		return "", false
	}

	delete(r.routes, h)
	delete(r.handles, route)
	for i, t := range r.tracked {
		if t == h {
			r.tracked = append(r.tracked[:i], r.tracked[i+1:]...)
			break
		}
	}
	return route, true
}

// Route returns the route bound to h.
func (r *Registry) Route(h Handle) (string, bool) {
	if h == nil {
		return "", false
	}
	route, ok := r.routes[h]
	return route, ok
}

// Handle returns the handle bound to route.
func (r *Registry) Handle(route string) (Handle, bool) {
	h, ok := r.handles[route]
	return h, ok
}

// Sort orders the Tracked Set by current vertical position. Handles with
// unusable geometry sort last.
func (r *Registry) Sort() {
	sort.SliceStable(r.tracked, func(i, j int) bool {
		return sortKey(r.tracked[i]) < sortKey(r.tracked[j])
	})
}

func sortKey(h Handle) float64 {
	top := h.Bounds().Top
	if math.IsNaN(top) {
		return math.Inf(1)
	}
	return top
}

// Tracked returns a copy of the Tracked Set.
func (r *Registry) Tracked() []Handle {
	out := make([]Handle, len(r.tracked))
	copy(out, r.tracked)
	return out
}

// Routes returns the tracked routes in Tracked Set order.
func (r *Registry) Routes() []string {
	out := make([]string, 0, len(r.tracked))
	for _, h := range r.tracked {
		out = append(out, r.routes[h])
	}
	return out
}

// Len returns the number of tracked handles.
func (r *Registry) Len() int {
	return len(r.tracked)
}

// Clear untracks everything.
func (r *Registry) Clear() {
	clear(r.routes)
	clear(r.handles)
	r.tracked = nil
}
